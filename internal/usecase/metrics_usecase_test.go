package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newMetricsUsecaseForTest(
	userRepo *mockUserRepo,
	doctorRepo *mockDoctorRepo,
	appointmentRepo *mockAppointmentRepo,
	labTestRepo *mockLabTestRepo,
	pharmacyRepo *mockPharmacyItemRepo,
	transactionRepo *mockTransactionRepo,
) *metricsUsecase {
	u := NewMetricsUsecase(testLogger(), userRepo, doctorRepo, appointmentRepo, labTestRepo, pharmacyRepo, transactionRepo, nil).(*metricsUsecase)
	return u
}

func TestOverviewAggregatesRollups(t *testing.T) {
	clinicID := uuid.New()
	user := staffUser(clinicID)

	appointmentRepo := &mockAppointmentRepo{
		countByClinicFn: func(_ context.Context, id uuid.UUID) (int64, error) {
			if id != clinicID {
				t.Errorf("rollup used wrong tenant: %s", id)
			}
			return 42, nil
		},
		countByClinicDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
			return 6, nil
		},
	}
	userRepo := &mockUserRepo{
		countActiveByClinicFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 11, nil },
	}
	labTestRepo := &mockLabTestRepo{
		countPendingByClinicFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 3, nil },
	}
	pharmacyRepo := &mockPharmacyItemRepo{
		countLowStockByClinicFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 2, nil },
	}
	transactionRepo := &mockTransactionRepo{
		sumIncomeByClinicDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(1500), nil
		},
	}

	u := newMetricsUsecaseForTest(userRepo, &mockDoctorRepo{}, appointmentRepo, labTestRepo, pharmacyRepo, transactionRepo)

	overview := u.Overview(context.Background(), user)
	if overview.TotalAppointments != 42 || overview.ActiveUsers != 11 || overview.PatientsToday != 6 {
		t.Errorf("unexpected rollups: %+v", overview)
	}
	if overview.PendingLabTests != 3 || overview.LowStockItems != 2 {
		t.Errorf("unexpected rollups: %+v", overview)
	}
	if !overview.RevenueToday.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected revenue 1500, got %s", overview.RevenueToday)
	}
}

func TestOverviewFailsSoftToAllZeros(t *testing.T) {
	// One broken rollup zeroes the whole response; the caller never sees a
	// mix of real and zeroed values, and never an error status.
	appointmentRepo := &mockAppointmentRepo{
		countByClinicFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 42, nil },
	}
	labTestRepo := &mockLabTestRepo{
		countPendingByClinicFn: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 0, errors.New("relation does not exist")
		},
	}
	u := newMetricsUsecaseForTest(&mockUserRepo{}, &mockDoctorRepo{}, appointmentRepo, labTestRepo, &mockPharmacyItemRepo{}, &mockTransactionRepo{})

	overview := u.Overview(context.Background(), staffUser(uuid.New()))
	if overview.TotalAppointments != 0 || overview.ActiveUsers != 0 || overview.PatientsToday != 0 {
		t.Errorf("expected all-zero response, got %+v", overview)
	}
	if !overview.RevenueToday.Equal(decimal.Zero) {
		t.Errorf("expected zero revenue, got %s", overview.RevenueToday)
	}
}

func TestDashboardUnknownRoleFallback(t *testing.T) {
	u := newMetricsUsecaseForTest(&mockUserRepo{}, &mockDoctorRepo{}, &mockAppointmentRepo{}, &mockLabTestRepo{}, &mockPharmacyItemRepo{}, &mockTransactionRepo{})

	dashboard, err := u.Dashboard(context.Background(), "accountant", staffUser(uuid.New()))
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	msg, ok := dashboard.(*dto.MessageResponse)
	if !ok {
		t.Fatalf("expected fallback message, got %T", dashboard)
	}
	if msg.Message != "Role-specific metrics not implemented yet" {
		t.Errorf("unexpected fallback message: %q", msg.Message)
	}
}

func TestDashboardDoctorWithoutProfileFallsBack(t *testing.T) {
	u := newMetricsUsecaseForTest(&mockUserRepo{}, &mockDoctorRepo{}, &mockAppointmentRepo{}, &mockLabTestRepo{}, &mockPharmacyItemRepo{}, &mockTransactionRepo{})

	clinicID := uuid.New()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, ClinicID: &clinicID}
	dashboard, err := u.Dashboard(context.Background(), "doctor", user)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if _, ok := dashboard.(*dto.MessageResponse); !ok {
		t.Fatalf("doctor without profile should get fallback message, got %T", dashboard)
	}
}

func TestDashboardDoctorDaySchedule(t *testing.T) {
	clinicID := uuid.New()
	doctorProfileID := uuid.New()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, ClinicID: &clinicID}

	doctorRepo := &mockDoctorRepo{
		findByUserIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: doctorProfileID, ClinicID: clinicID}, nil
		},
	}
	appointmentRepo := &mockAppointmentRepo{
		listByDoctorDateFn: func(_ context.Context, doctorID uuid.UUID, _ time.Time) ([]entity.Appointment, error) {
			if doctorID != doctorProfileID {
				t.Errorf("schedule queried for wrong doctor: %s", doctorID)
			}
			return []entity.Appointment{
				{ID: uuid.New(), AppointmentTime: "09:00", Status: entity.AppointmentStatusScheduled},
				{ID: uuid.New(), AppointmentTime: "09:30", Status: entity.AppointmentStatusConfirmed},
			}, nil
		},
	}
	u := newMetricsUsecaseForTest(&mockUserRepo{}, doctorRepo, appointmentRepo, &mockLabTestRepo{}, &mockPharmacyItemRepo{}, &mockTransactionRepo{})

	dashboard, err := u.Dashboard(context.Background(), "doctor", user)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	resp, ok := dashboard.(*dto.DoctorDashboardResponse)
	if !ok {
		t.Fatalf("expected doctor dashboard, got %T", dashboard)
	}
	if resp.TotalPatients != 2 {
		t.Errorf("expected 2 patients, got %d", resp.TotalPatients)
	}
	if resp.NextAppointment == nil || resp.NextAppointment.AppointmentTime != "09:00" {
		t.Errorf("next appointment should be the earliest, got %+v", resp.NextAppointment)
	}
}

func TestDashboardReceptionistWaitingSubset(t *testing.T) {
	appointmentRepo := &mockAppointmentRepo{
		listByClinicDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{
				{ID: uuid.New(), Status: entity.AppointmentStatusScheduled},
				{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed},
				{ID: uuid.New(), Status: entity.AppointmentStatusCompleted},
			}, nil
		},
	}
	u := newMetricsUsecaseForTest(&mockUserRepo{}, &mockDoctorRepo{}, appointmentRepo, &mockLabTestRepo{}, &mockPharmacyItemRepo{}, &mockTransactionRepo{})

	dashboard, err := u.Dashboard(context.Background(), "receptionist", staffUser(uuid.New()))
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	resp, ok := dashboard.(*dto.ReceptionistDashboardResponse)
	if !ok {
		t.Fatalf("expected receptionist dashboard, got %T", dashboard)
	}
	if resp.TotalToday != 3 {
		t.Errorf("expected 3 appointments today, got %d", resp.TotalToday)
	}
	if len(resp.WaitingPatients) != 1 || resp.WaitingPatients[0].Status != "confirmed" {
		t.Errorf("waiting list should hold only confirmed appointments, got %+v", resp.WaitingPatients)
	}
}

func TestDashboardPharmacistAlerts(t *testing.T) {
	var expiryCutoff time.Time
	pharmacyRepo := &mockPharmacyItemRepo{
		listLowStockByClinicFn: func(_ context.Context, _ uuid.UUID) ([]entity.PharmacyItem, error) {
			return []entity.PharmacyItem{
				{ID: uuid.New(), Name: "Paracetamol", QuantityAvailable: 2, ReorderLevel: 10},
				{ID: uuid.New(), Name: "Ibuprofen", QuantityAvailable: 0, ReorderLevel: 5},
			}, nil
		},
		listExpiringByClinicFn: func(_ context.Context, _ uuid.UUID, before time.Time) ([]entity.PharmacyItem, error) {
			expiryCutoff = before
			return []entity.PharmacyItem{
				{ID: uuid.New(), Name: "Insulin"},
			}, nil
		},
	}
	u := newMetricsUsecaseForTest(&mockUserRepo{}, &mockDoctorRepo{}, &mockAppointmentRepo{}, &mockLabTestRepo{}, pharmacyRepo, &mockTransactionRepo{})
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return today }

	dashboard, err := u.Dashboard(context.Background(), "pharmacist", staffUser(uuid.New()))
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	resp, ok := dashboard.(*dto.PharmacistDashboardResponse)
	if !ok {
		t.Fatalf("expected pharmacist dashboard, got %T", dashboard)
	}
	if resp.AlertsCount != 3 {
		t.Errorf("expected 3 alerts, got %d", resp.AlertsCount)
	}
	if want := today.AddDate(0, 0, 60); !expiryCutoff.Equal(want) {
		t.Errorf("expiry window should end %s, got %s", want, expiryCutoff)
	}
}
