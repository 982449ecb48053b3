package usecase

import (
	"context"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"
	"github.com/TechBirds21/hospital-web-hub/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type mockAppointmentRepo struct {
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	listFn              func(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	findScheduledSlotFn func(ctx context.Context, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error)
	countByDoctorDateFn func(ctx context.Context, doctorID uuid.UUID, date time.Time) (int64, error)
	createFn            func(ctx context.Context, appointment *entity.Appointment) error
	updateFieldsFn      func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Appointment, error)
	cancelFn            func(ctx context.Context, id uuid.UUID) (int64, error)
	queueFn             func(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	countByClinicFn     func(ctx context.Context, clinicID uuid.UUID) (int64, error)
	countByClinicDateFn func(ctx context.Context, clinicID uuid.UUID, date time.Time) (int64, error)
	listByDoctorDateFn  func(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	listByClinicDateFn  func(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]entity.Appointment, error)
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindScheduledSlot(ctx context.Context, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	if m.findScheduledSlotFn != nil {
		return m.findScheduledSlotFn(ctx, doctorID, date, timeOfDay)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) CountByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (int64, error) {
	if m.countByDoctorDateFn != nil {
		return m.countByDoctorDateFn(ctx, doctorID, date)
	}
	return 0, nil
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Appointment, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, id)
	}
	return 0, nil
}

func (m *mockAppointmentRepo) Queue(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	if m.queueFn != nil {
		return m.queueFn(ctx, doctorID, date)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) CountByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	if m.countByClinicFn != nil {
		return m.countByClinicFn(ctx, clinicID)
	}
	return 0, nil
}

func (m *mockAppointmentRepo) CountByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (int64, error) {
	if m.countByClinicDateFn != nil {
		return m.countByClinicDateFn(ctx, clinicID, date)
	}
	return 0, nil
}

func (m *mockAppointmentRepo) ListByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	if m.listByDoctorDateFn != nil {
		return m.listByDoctorDateFn(ctx, doctorID, date)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	if m.listByClinicDateFn != nil {
		return m.listByClinicDateFn(ctx, clinicID, date)
	}
	return nil, nil
}

type mockUserRepo struct {
	createWithCredentialsFn func(ctx context.Context, cred *entity.AuthCredential, user *entity.User) error
	findByAuthUserIDFn      func(ctx context.Context, authUserID uuid.UUID) (*entity.User, error)
	countActiveByClinicFn   func(ctx context.Context, clinicID uuid.UUID) (int64, error)
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) CreateWithCredentials(ctx context.Context, cred *entity.AuthCredential, user *entity.User) error {
	if m.createWithCredentialsFn != nil {
		return m.createWithCredentialsFn(ctx, cred, user)
	}
	return nil
}

func (m *mockUserRepo) FindByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*entity.User, error) {
	if m.findByAuthUserIDFn != nil {
		return m.findByAuthUserIDFn(ctx, authUserID)
	}
	return nil, nil
}

func (m *mockUserRepo) CountActiveByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	if m.countActiveByClinicFn != nil {
		return m.countActiveByClinicFn(ctx, clinicID)
	}
	return 0, nil
}

type mockCredentialRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*entity.AuthCredential, error)
}

var _ repository.CredentialRepository = (*mockCredentialRepo)(nil)

func (m *mockCredentialRepo) FindByEmail(ctx context.Context, email string) (*entity.AuthCredential, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

type mockDoctorRepo struct {
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	listByClinicFn func(ctx context.Context, clinicID uuid.UUID) ([]entity.Doctor, error)
}

var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)

func (m *mockDoctorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDoctorRepo) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.Doctor, error) {
	if m.listByClinicFn != nil {
		return m.listByClinicFn(ctx, clinicID)
	}
	return nil, nil
}

type mockPatientRepo struct {
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Patient, error)
	listByClinicFn func(ctx context.Context, clinicID uuid.UUID) ([]entity.Patient, error)
}

var _ repository.PatientRepository = (*mockPatientRepo)(nil)

func (m *mockPatientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPatientRepo) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.Patient, error) {
	if m.listByClinicFn != nil {
		return m.listByClinicFn(ctx, clinicID)
	}
	return nil, nil
}

type mockLabTestRepo struct {
	countPendingByClinicFn func(ctx context.Context, clinicID uuid.UUID) (int64, error)
}

var _ repository.LabTestRepository = (*mockLabTestRepo)(nil)

func (m *mockLabTestRepo) CountPendingByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	if m.countPendingByClinicFn != nil {
		return m.countPendingByClinicFn(ctx, clinicID)
	}
	return 0, nil
}

type mockPharmacyItemRepo struct {
	countLowStockByClinicFn func(ctx context.Context, clinicID uuid.UUID) (int64, error)
	listLowStockByClinicFn  func(ctx context.Context, clinicID uuid.UUID) ([]entity.PharmacyItem, error)
	listExpiringByClinicFn  func(ctx context.Context, clinicID uuid.UUID, before time.Time) ([]entity.PharmacyItem, error)
}

var _ repository.PharmacyItemRepository = (*mockPharmacyItemRepo)(nil)

func (m *mockPharmacyItemRepo) CountLowStockByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	if m.countLowStockByClinicFn != nil {
		return m.countLowStockByClinicFn(ctx, clinicID)
	}
	return 0, nil
}

func (m *mockPharmacyItemRepo) ListLowStockByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.PharmacyItem, error) {
	if m.listLowStockByClinicFn != nil {
		return m.listLowStockByClinicFn(ctx, clinicID)
	}
	return nil, nil
}

func (m *mockPharmacyItemRepo) ListExpiringByClinic(ctx context.Context, clinicID uuid.UUID, before time.Time) ([]entity.PharmacyItem, error) {
	if m.listExpiringByClinicFn != nil {
		return m.listExpiringByClinicFn(ctx, clinicID, before)
	}
	return nil, nil
}

type mockTransactionRepo struct {
	sumIncomeByClinicDateFn func(ctx context.Context, clinicID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

var _ repository.TransactionRepository = (*mockTransactionRepo)(nil)

func (m *mockTransactionRepo) SumIncomeByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	if m.sumIncomeByClinicDateFn != nil {
		return m.sumIncomeByClinicDateFn(ctx, clinicID, date)
	}
	return decimal.Zero, nil
}

type mockAuditService struct {
	recordFn func(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON)
}

var _ service.AuditService = (*mockAuditService)(nil)

func (m *mockAuditService) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	if m.recordFn != nil {
		m.recordFn(ctx, userID, action, metadata)
	}
}
