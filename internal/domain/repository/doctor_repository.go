package repository

import (
	"context"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.Doctor, error)
}

type PatientRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.Patient, error)
}
