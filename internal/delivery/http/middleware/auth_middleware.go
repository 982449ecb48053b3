package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/repository"
	"github.com/TechBirds21/hospital-web-hub/pkg/jwt"
	"github.com/TechBirds21/hospital-web-hub/pkg/response"
)

type contextKey string

const UserKey contextKey = "current_user"

// credentialsError is the uniform 401 message: header problems, bad
// signatures, expired tokens and orphaned identities are indistinguishable
// to the caller.
const credentialsError = "Could not validate credentials"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, credentialsError)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, credentialsError)
			return
		}

		authUserID, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, credentialsError)
			return
		}

		// The token subject references the auth identity; resolve the
		// profile row on every request so deactivated or deleted users
		// lose access immediately.
		user, err := m.userRepo.FindByAuthUserID(r.Context(), authUserID)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve user")
			return
		}
		if user == nil {
			response.Unauthorized(w, credentialsError)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user set by Authenticate.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok
}
