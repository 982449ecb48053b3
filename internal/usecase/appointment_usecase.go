package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/converter"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"
	"github.com/TechBirds21/hospital-web-hub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("time slot not available")
	ErrCreationFailed      = errors.New("failed to create appointment")
	ErrNotAppointmentOwner = errors.New("not authorized to update this appointment")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus       = errors.New("unknown appointment status")
	ErrInvalidID           = errors.New("invalid identifier")
)

type AppointmentUsecase interface {
	List(ctx context.Context, query *dto.AppointmentQuery, user *entity.User) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, user *entity.User) error
	Queue(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scopeResolver   *ScopeResolver
	audit           service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scopeResolver *ScopeResolver,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		scopeResolver:   scopeResolver,
		audit:           audit,
		now:             time.Now,
	}
}

// List returns appointments matching the optional equality filters, narrowed
// to the caller's access scope, ordered by date then time ascending.
func (u *appointmentUsecase) List(ctx context.Context, query *dto.AppointmentQuery, user *entity.User) (*dto.AppointmentListResponse, error) {
	filter := entity.AppointmentFilter{}

	if query.Date != "" {
		date, err := time.Parse(entity.DateLayout, query.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.Date = &date
	}
	if query.DoctorID != "" {
		doctorID, err := uuid.Parse(query.DoctorID)
		if err != nil {
			return nil, ErrInvalidID
		}
		filter.DoctorID = &doctorID
	}
	if query.PatientID != "" {
		patientID, err := uuid.Parse(query.PatientID)
		if err != nil {
			return nil, ErrInvalidID
		}
		filter.PatientID = &patientID
	}
	if query.Status != "" {
		status, err := entity.ParseAppointmentStatus(query.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	scope, err := u.scopeResolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.List(ctx, scope.Apply(filter))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

// Create books a slot for the caller's tenant.
//
// Flow:
// 1. Conflict check: only a "scheduled" appointment blocks the slot;
//    confirmed or in-progress ones deliberately do not.
// 2. Token assignment: count of the doctor's appointments that day + 1.
// 3. Insert with initial status "scheduled". The partial unique index on
//    scheduled slots backstops concurrent creates racing past step 1.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(entity.DateLayout, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	timeOfDay, err := normalizeTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	existing, err := u.appointmentRepo.FindScheduledSlot(ctx, req.DoctorID, date, timeOfDay)
	if err != nil {
		u.log.Warnf("Failed slot conflict check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotUnavailable
	}

	count, err := u.appointmentRepo.CountByDoctorDate(ctx, req.DoctorID, date)
	if err != nil {
		u.log.Warnf("Failed token count for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	appointment := &entity.Appointment{
		ClinicID:        user.TenantID(),
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          entity.AppointmentStatusScheduled,
		TokenNumber:     int(count) + 1,
		ChiefComplaint:  req.ChiefComplaint,
		ConsultationFee: req.ConsultationFee,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "scheduled_slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, ErrCreationFailed
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      appointment.DoctorID.String(),
		"date":           req.AppointmentDate,
		"token_number":   appointment.TokenNumber,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies the non-nil fields of the patch. Doctor and patient callers
// must own the appointment; no status-transition legality is enforced.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	scope, err := u.scopeResolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	if scope.DoctorID != nil && *scope.DoctorID != appointment.DoctorID {
		return nil, ErrNotAppointmentOwner
	}
	if scope.PatientID != nil && *scope.PatientID != appointment.PatientID {
		return nil, ErrNotAppointmentOwner
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		status, err := entity.ParseAppointmentStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		fields["status"] = status
	}
	if req.Diagnosis != nil {
		fields["diagnosis"] = *req.Diagnosis
	}
	if req.TreatmentPlan != nil {
		fields["treatment_plan"] = *req.TreatmentPlan
	}
	if req.Prescriptions != nil {
		fields["prescriptions"] = entity.JSON(req.Prescriptions)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if len(fields) == 0 {
		return converter.AppointmentToResponse(appointment), nil
	}

	updated, err := u.appointmentRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionAppointmentUpdate, entity.JSON{
		"appointment_id": id.String(),
	})

	return converter.AppointmentToResponse(updated), nil
}

// Cancel unconditionally transitions the appointment to cancelled and is
// idempotent. Unlike Update it applies no ownership check.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, user *entity.User) error {
	affected, err := u.appointmentRepo.Cancel(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": id.String(),
	})

	return nil
}

// Queue returns the doctor's still-active appointments for the day, ordered
// by time ascending. The date defaults to today.
func (u *appointmentUsecase) Queue(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error) {
	day := u.now()
	if date != "" {
		parsed, err := time.Parse(entity.DateLayout, date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		day = parsed
	}

	appointments, err := u.appointmentRepo.Queue(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load queue for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.QueueResponse{
		Queue: converter.AppointmentsToResponses(appointments),
		Date:  day.Format(entity.DateLayout),
	}, nil
}

// normalizeTimeOfDay accepts HH:MM or HH:MM:SS and returns the canonical
// HH:MM form used for slot comparison.
func normalizeTimeOfDay(s string) (string, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04"), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}
