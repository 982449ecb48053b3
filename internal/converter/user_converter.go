package converter

import (
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	isActive := true
	if user.IsActive != nil {
		isActive = *user.IsActive
	}

	return &dto.UserResponse{
		ID:         user.ID,
		AuthUserID: user.AuthUserID,
		Email:      user.Email,
		Role:       string(user.Role),
		ClinicID:   user.ClinicID,
		HospitalID: user.HospitalID,
		Phone:      user.Phone,
		IsActive:   isActive,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
