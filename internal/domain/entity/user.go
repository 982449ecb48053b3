package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a tenant-scoped user profile row. Credentials live in
// AuthCredential; the two are linked by AuthUserID.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuthUserID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"auth_user_id"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role       Role       `gorm:"type:varchar(50);not null;index" json:"role"`
	ClinicID   *uuid.UUID `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	HospitalID *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	Phone      string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive   *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// TenantID returns the tenant the user belongs to: the clinic id, falling
// back to the hospital id. uuid.Nil when the user has neither.
func (u *User) TenantID() uuid.UUID {
	if u.ClinicID != nil {
		return *u.ClinicID
	}
	if u.HospitalID != nil {
		return *u.HospitalID
	}
	return uuid.Nil
}

// AuthCredential represents an identity in the auth subsystem.
type AuthCredential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuthCredential) TableName() string {
	return "auth_credentials"
}
