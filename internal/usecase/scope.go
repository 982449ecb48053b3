package usecase

import (
	"context"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccessScope narrows data access for an authenticated caller. The tenant
// restriction always applies; doctor and patient callers are additionally
// restricted to rows they own.
type AccessScope struct {
	TenantID  uuid.UUID
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
}

// ScopeResolver resolves the access scope for a user. It must be consulted
// on every read and before every permission-sensitive write.
type ScopeResolver struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewScopeResolver(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) *ScopeResolver {
	return &ScopeResolver{
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

// Resolve builds the caller's access scope. A doctor or patient without a
// linked profile row gets the nil UUID as owner id, so the restriction
// matches nothing instead of erroring.
func (s *ScopeResolver) Resolve(ctx context.Context, user *entity.User) (AccessScope, error) {
	scope := AccessScope{TenantID: user.TenantID()}

	switch user.Role {
	case entity.RoleDoctor:
		doctor, err := s.doctorRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			s.log.Warnf("Failed to resolve doctor profile for user %s: %+v", user.ID, err)
			return AccessScope{}, err
		}
		ownerID := uuid.Nil
		if doctor != nil {
			ownerID = doctor.ID
		}
		scope.DoctorID = &ownerID
	case entity.RolePatient:
		patient, err := s.patientRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			s.log.Warnf("Failed to resolve patient profile for user %s: %+v", user.ID, err)
			return AccessScope{}, err
		}
		ownerID := uuid.Nil
		if patient != nil {
			ownerID = patient.ID
		}
		scope.PatientID = &ownerID
	}

	return scope, nil
}

// Apply narrows an appointment filter to the scope. A caller-supplied
// owner filter that conflicts with the scope is replaced by the nil UUID,
// which matches nothing.
func (s AccessScope) Apply(filter entity.AppointmentFilter) entity.AppointmentFilter {
	filter.ClinicID = s.TenantID

	if s.DoctorID != nil {
		if filter.DoctorID != nil && *filter.DoctorID != *s.DoctorID {
			nothing := uuid.Nil
			filter.DoctorID = &nothing
		} else {
			filter.DoctorID = s.DoctorID
		}
	}
	if s.PatientID != nil {
		if filter.PatientID != nil && *filter.PatientID != *s.PatientID {
			nothing := uuid.Nil
			filter.PatientID = &nothing
		} else {
			filter.PatientID = s.PatientID
		}
	}

	return filter
}
