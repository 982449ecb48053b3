package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID        `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID        `json:"doctor_id" validate:"required"`
	AppointmentDate string           `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string           `json:"appointment_time" validate:"required"`
	ChiefComplaint  string           `json:"chief_complaint,omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee,omitempty"`
}

// AppointmentQuery carries the optional equality filters of the listing
// endpoint, raw from the query string.
type AppointmentQuery struct {
	Date      string
	DoctorID  string
	PatientID string
	Status    string
}

// UpdateAppointmentRequest carries a partial update: only non-nil fields
// are applied.
type UpdateAppointmentRequest struct {
	Status        *string                `json:"status,omitempty" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled"`
	Diagnosis     *string                `json:"diagnosis,omitempty"`
	TreatmentPlan *string                `json:"treatment_plan,omitempty"`
	Prescriptions map[string]interface{} `json:"prescriptions,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID              `json:"id"`
	ClinicID        uuid.UUID              `json:"clinic_id"`
	PatientID       uuid.UUID              `json:"patient_id"`
	DoctorID        uuid.UUID              `json:"doctor_id"`
	AppointmentDate string                 `json:"appointment_date"`
	AppointmentTime string                 `json:"appointment_time"`
	Status          string                 `json:"status"`
	TokenNumber     int                    `json:"token_number"`
	ChiefComplaint  string                 `json:"chief_complaint,omitempty"`
	Diagnosis       string                 `json:"diagnosis,omitempty"`
	TreatmentPlan   string                 `json:"treatment_plan,omitempty"`
	Prescriptions   map[string]interface{} `json:"prescriptions,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	ConsultationFee *decimal.Decimal       `json:"consultation_fee,omitempty"`
	Patient         *PatientResponse       `json:"patient,omitempty"`
	Doctor          *DoctorResponse        `json:"doctor,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type AppointmentMessageResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Message     string              `json:"message"`
}

type QueueResponse struct {
	Queue []AppointmentResponse `json:"queue"`
	Date  string                `json:"date"`
}
