package converter

import (
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		ClinicID:       doctor.ClinicID,
		UserID:         doctor.UserID,
		FullName:       doctor.FullName,
		Specialization: doctor.Specialization,
		Phone:          doctor.Phone,
		CreatedAt:      doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
