package repository

import (
	"context"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindScheduledSlot returns the appointment occupying the exact
	// (doctor, date, time) slot with status "scheduled", or nil.
	FindScheduledSlot(ctx context.Context, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error)
	CountByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (int64, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	// UpdateFields applies a partial update and returns the updated row,
	// or nil when no row matches.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Appointment, error)
	// Cancel unconditionally sets status to cancelled. Returns affected
	// rows: 0 means the appointment does not exist.
	Cancel(ctx context.Context, id uuid.UUID) (int64, error)
	// Queue returns the doctor's appointments for the given date whose
	// status is still active, ordered by time ascending.
	Queue(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	CountByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error)
	CountByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (int64, error)
	ListByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	ListByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]entity.Appointment, error)
}
