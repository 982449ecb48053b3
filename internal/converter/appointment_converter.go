package converter

import (
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		ClinicID:        appointment.ClinicID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate.Format(entity.DateLayout),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		TokenNumber:     appointment.TokenNumber,
		ChiefComplaint:  appointment.ChiefComplaint,
		Diagnosis:       appointment.Diagnosis,
		TreatmentPlan:   appointment.TreatmentPlan,
		Prescriptions:   appointment.Prescriptions,
		Notes:           appointment.Notes,
		ConsultationFee: appointment.ConsultationFee,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include related profiles when preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
