package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/TechBirds21/hospital-web-hub/internal/converter"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"
	"github.com/TechBirds21/hospital-web-hub/internal/service"
	"github.com/TechBirds21/hospital-web-hub/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrInvalidRole        = errors.New("unknown role")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, user *entity.User) *dto.MessageResponse
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	credRepo   repository.CredentialRepository
	jwtService *jwt.JWTService
	audit      service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	credRepo repository.CredentialRepository,
	jwtService *jwt.JWTService,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		credRepo:   credRepo,
		jwtService: jwtService,
		audit:      audit,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	cred, err := u.credRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find credentials by email: %+v", err)
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByAuthUserID(ctx, cred.ID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	accessToken, err := u.jwtService.GenerateToken(cred.ID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserLogin, entity.JSON{"email": user.Email})

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, ErrRegistrationFailed
	}

	cred := &entity.AuthCredential{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	user := &entity.User{
		Email:    req.Email,
		Role:     role,
		ClinicID: req.ClinicID,
		Phone:    req.Phone,
	}

	// Identity and profile are created in one transaction so a failed
	// profile insert cannot leave an orphaned identity behind.
	if err := u.userRepo.CreateWithCredentials(ctx, cred, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to register user: %+v", err)
		return nil, ErrRegistrationFailed
	}

	accessToken, err := u.jwtService.GenerateToken(cred.ID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, ErrRegistrationFailed
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": user.Email,
		"role":  string(user.Role),
	})

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        *converter.UserToResponse(user),
	}, nil
}

// Logout is a stateless no-op: session tokens are not persisted server-side
// and expire on their own.
func (u *authUsecase) Logout(ctx context.Context, user *entity.User) *dto.MessageResponse {
	u.audit.Record(ctx, &user.ID, entity.AuditActionUserLogout, nil)
	return &dto.MessageResponse{Message: "Successfully logged out"}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
