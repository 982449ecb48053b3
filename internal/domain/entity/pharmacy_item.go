package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PharmacyItem represents a tenant-scoped pharmacy stock item.
type PharmacyItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	QuantityAvailable int             `gorm:"not null;default:0" json:"quantity_available"`
	ReorderLevel      int             `gorm:"not null;default:0" json:"reorder_level"`
	ExpiryDate        *time.Time      `gorm:"type:date;index" json:"expiry_date,omitempty"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyItem) TableName() string {
	return "pharmacy_items"
}

// IsLowStock checks whether available quantity has reached the reorder level.
func (p *PharmacyItem) IsLowStock() bool {
	return p.QuantityAvailable <= p.ReorderLevel
}
