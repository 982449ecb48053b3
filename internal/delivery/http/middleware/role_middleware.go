package middleware

import (
	"net/http"

	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the allowed
// roles. Must run after AuthMiddleware.Authenticate.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, credentialsError)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if user.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff limits an endpoint to clinic staff, keeping patient accounts
// away from other patients' records.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(
		entity.RoleAdmin,
		entity.RoleDoctor,
		entity.RoleReceptionist,
		entity.RolePharmacist,
		entity.RoleLabTechnician,
		entity.RoleAccountant,
	)(next)
}
