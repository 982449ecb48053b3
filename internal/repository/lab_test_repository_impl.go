package repository

import (
	"context"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	domainRepo "github.com/TechBirds21/hospital-web-hub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) CountPendingByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.LabTest{}).
		Where("clinic_id = ? AND status IN ?", clinicID, entity.PendingLabTestStatuses).
		Count(&count).Error
	return count, err
}
