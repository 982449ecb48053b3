package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/converter"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	overviewCacheTTL = 30 * time.Second
	expiryWindowDays = 60
)

type MetricsUsecase interface {
	// Overview never fails: any rollup error yields the all-zero response.
	Overview(ctx context.Context, user *entity.User) *dto.MetricsOverviewResponse
	Dashboard(ctx context.Context, role string, user *entity.User) (interface{}, error)
}

type metricsUsecase struct {
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	labTestRepo     repository.LabTestRepository
	pharmacyRepo    repository.PharmacyItemRepository
	transactionRepo repository.TransactionRepository
	cache           *redis.Client
	now             func() time.Time
}

func NewMetricsUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	labTestRepo repository.LabTestRepository,
	pharmacyRepo repository.PharmacyItemRepository,
	transactionRepo repository.TransactionRepository,
	cache *redis.Client,
) MetricsUsecase {
	return &metricsUsecase{
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		labTestRepo:     labTestRepo,
		pharmacyRepo:    pharmacyRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Overview computes the tenant-wide dashboard rollups. The whole response is
// fail-soft: if any single rollup errors the caller gets all zeros, never a
// partial mix of real and zeroed values.
func (u *metricsUsecase) Overview(ctx context.Context, user *entity.User) *dto.MetricsOverviewResponse {
	clinicID := user.TenantID()
	cacheKey := fmt.Sprintf("metrics:overview:%s", clinicID)

	if cached := u.cachedOverview(ctx, cacheKey); cached != nil {
		return cached
	}

	overview, err := u.computeOverview(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Overview rollup failed for clinic %s, returning zeros: %+v", clinicID, err)
		return &dto.MetricsOverviewResponse{RevenueToday: decimal.Zero}
	}

	u.storeOverview(ctx, cacheKey, overview)
	return overview
}

func (u *metricsUsecase) computeOverview(ctx context.Context, clinicID uuid.UUID) (*dto.MetricsOverviewResponse, error) {
	today := u.now()

	totalAppointments, err := u.appointmentRepo.CountByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	activeUsers, err := u.userRepo.CountActiveByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	revenueToday, err := u.transactionRepo.SumIncomeByClinicDate(ctx, clinicID, today)
	if err != nil {
		return nil, err
	}
	patientsToday, err := u.appointmentRepo.CountByClinicDate(ctx, clinicID, today)
	if err != nil {
		return nil, err
	}
	pendingLabTests, err := u.labTestRepo.CountPendingByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	lowStockItems, err := u.pharmacyRepo.CountLowStockByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	return &dto.MetricsOverviewResponse{
		TotalAppointments: totalAppointments,
		ActiveUsers:       activeUsers,
		RevenueToday:      revenueToday,
		PatientsToday:     patientsToday,
		PendingLabTests:   pendingLabTests,
		LowStockItems:     lowStockItems,
	}, nil
}

// Dashboard computes role-shaped metrics. Roles without a dashboard get the
// fallback message, as does a doctor caller without a linked profile.
func (u *metricsUsecase) Dashboard(ctx context.Context, role string, user *entity.User) (interface{}, error) {
	clinicID := user.TenantID()
	today := u.now()

	switch entity.Role(role) {
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			break
		}

		appointments, err := u.appointmentRepo.ListByDoctorDate(ctx, doctor.ID, today)
		if err != nil {
			return nil, err
		}

		resp := &dto.DoctorDashboardResponse{
			AppointmentsToday: converter.AppointmentsToResponses(appointments),
			TotalPatients:     len(appointments),
		}
		if len(appointments) > 0 {
			resp.NextAppointment = converter.AppointmentToResponse(&appointments[0])
		}
		return resp, nil

	case entity.RoleReceptionist:
		appointments, err := u.appointmentRepo.ListByClinicDate(ctx, clinicID, today)
		if err != nil {
			return nil, err
		}

		responses := converter.AppointmentsToResponses(appointments)
		waiting := make([]dto.AppointmentResponse, 0)
		for _, appointment := range responses {
			if appointment.Status == string(entity.AppointmentStatusConfirmed) {
				waiting = append(waiting, appointment)
			}
		}

		return &dto.ReceptionistDashboardResponse{
			AppointmentsToday: responses,
			WaitingPatients:   waiting,
			TotalToday:        len(responses),
		}, nil

	case entity.RolePharmacist:
		lowStock, err := u.pharmacyRepo.ListLowStockByClinic(ctx, clinicID)
		if err != nil {
			return nil, err
		}
		expiring, err := u.pharmacyRepo.ListExpiringByClinic(ctx, clinicID, today.AddDate(0, 0, expiryWindowDays))
		if err != nil {
			return nil, err
		}

		return &dto.PharmacistDashboardResponse{
			LowStockItems: converter.PharmacyItemsToResponses(lowStock),
			ExpiringItems: converter.PharmacyItemsToResponses(expiring),
			AlertsCount:   len(lowStock) + len(expiring),
		}, nil
	}

	return &dto.MessageResponse{Message: "Role-specific metrics not implemented yet"}, nil
}

// cachedOverview and storeOverview are best-effort: a broken or absent cache
// never affects the response.
func (u *metricsUsecase) cachedOverview(ctx context.Context, key string) *dto.MetricsOverviewResponse {
	if u.cache == nil {
		return nil
	}

	payload, err := u.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read overview cache: %+v", err)
		}
		return nil
	}

	var overview dto.MetricsOverviewResponse
	if err := json.Unmarshal(payload, &overview); err != nil {
		u.log.Warnf("Failed to decode overview cache: %+v", err)
		return nil
	}
	return &overview
}

func (u *metricsUsecase) storeOverview(ctx context.Context, key string, overview *dto.MetricsOverviewResponse) {
	if u.cache == nil {
		return
	}

	payload, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, payload, overviewCacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to write overview cache: %+v", err)
	}
}
