package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-appointments-service/pkg/jwt"
	"vet-appointments-service/pkg/response"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	UserEmailKey   contextKey = "user_email"
	UserRoleKey    contextKey = "user_role"
	BearerTokenKey contextKey = "bearer_token"
)

// Identity is the authenticated caller as resolved from the bearer token.
type Identity struct {
	ID    int
	Email string
	Role  string
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// The raw token is kept so gateway clients can forward it to the
		// Auth and Patients services.
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
		ctx = context.WithValue(ctx, BearerTokenKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext extracts the authenticated caller from context
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	if !ok {
		return Identity{}, false
	}
	email, ok := ctx.Value(UserEmailKey).(string)
	if !ok {
		return Identity{}, false
	}
	role, _ := ctx.Value(UserRoleKey).(string)
	return Identity{ID: userID, Email: email, Role: role}, true
}

// GetBearerFromContext extracts the raw bearer token from context
func GetBearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenKey).(string)
	return token, ok
}
