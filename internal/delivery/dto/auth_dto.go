package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     string     `json:"role" validate:"required,oneof=admin doctor patient receptionist pharmacist lab_technician accountant"`
	ClinicID *uuid.UUID `json:"clinic_id,omitempty"`
	Phone    string     `json:"phone,omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	AuthUserID uuid.UUID  `json:"auth_user_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ClinicID   *uuid.UUID `json:"clinic_id,omitempty"`
	HospitalID *uuid.UUID `json:"hospital_id,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
