package repository

import (
	"context"
	"time"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	domainRepo "github.com/TechBirds21/hospital-web-hub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pharmacyItemRepository struct {
	db *gorm.DB
}

func NewPharmacyItemRepository(db *gorm.DB) domainRepo.PharmacyItemRepository {
	return &pharmacyItemRepository{db: db}
}

func (r *pharmacyItemRepository) CountLowStockByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PharmacyItem{}).
		Where("clinic_id = ? AND quantity_available <= reorder_level", clinicID).
		Count(&count).Error
	return count, err
}

func (r *pharmacyItemRepository) ListLowStockByClinic(ctx context.Context, clinicID uuid.UUID) ([]entity.PharmacyItem, error) {
	var items []entity.PharmacyItem
	err := r.db.WithContext(ctx).
		Where("clinic_id = ? AND quantity_available <= reorder_level", clinicID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pharmacyItemRepository) ListExpiringByClinic(ctx context.Context, clinicID uuid.UUID, before time.Time) ([]entity.PharmacyItem, error) {
	var items []entity.PharmacyItem
	err := r.db.WithContext(ctx).
		Where("clinic_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?",
			clinicID, before.Format(entity.DateLayout)).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
