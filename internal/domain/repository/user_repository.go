package repository

import (
	"context"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	// CreateWithCredentials atomically creates an auth identity and the
	// matching user profile row.
	CreateWithCredentials(ctx context.Context, cred *entity.AuthCredential, user *entity.User) error
	FindByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*entity.User, error)
	CountActiveByClinic(ctx context.Context, clinicID uuid.UUID) (int64, error)
}

type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.AuthCredential, error)
}
