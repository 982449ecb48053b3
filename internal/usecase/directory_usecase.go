package usecase

import (
	"context"

	"github.com/TechBirds21/hospital-web-hub/internal/converter"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DirectoryUsecase lists the tenant's doctor and patient rosters.
type DirectoryUsecase interface {
	ListDoctors(ctx context.Context, user *entity.User) (*dto.DoctorListResponse, error)
	ListPatients(ctx context.Context, user *entity.User) (*dto.PatientListResponse, error)
}

type directoryUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (u *directoryUsecase) ListDoctors(ctx context.Context, user *entity.User) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.ListByClinic(ctx, user.TenantID())
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *directoryUsecase) ListPatients(ctx context.Context, user *entity.User) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.ListByClinic(ctx, user.TenantID())
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
