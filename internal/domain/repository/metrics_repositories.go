package repository

import (
	"context"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LabTestRepository interface {
	CountPendingByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error)
}

type PharmacyItemRepository interface {
	CountLowStockByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error)
	ListLowStockByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.PharmacyItem, error)
	ListExpiringByClinic(ctx context.Context, clinicID uuid.UUID, before time.Time) ([]entity.PharmacyItem, error)
}

type TransactionRepository interface {
	SumIncomeByClinicDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}
