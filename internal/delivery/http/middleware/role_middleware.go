package middleware

import (
	"net/http"

	"vet-appointments-service/internal/gateway"
	"vet-appointments-service/pkg/response"
)

// RequireRole creates a middleware that checks if the caller holds any of the
// given role names. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if identity.Role == role {
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

// RequireVeterinarian is a convenience middleware for veterinarian-only
// endpoints
func RequireVeterinarian(next http.Handler) http.Handler {
	return RequireRole(gateway.RoleVeterinarian)(next)
}
