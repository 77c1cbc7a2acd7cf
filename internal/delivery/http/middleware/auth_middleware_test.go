package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vet-appointments-service/config"
	"vet-appointments-service/internal/gateway"
	"vet-appointments-service/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: testSecret})
}

func signToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.Claims{
		UserID: 7,
		Email:  "maria@example.com",
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthenticateStoresIdentityAndBearer(t *testing.T) {
	token := signToken(t, "client", time.Now().Add(time.Hour))
	middleware := NewAuthMiddleware(testJWTService())

	var gotIdentity Identity
	var gotBearer string
	var identityOK, bearerOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, identityOK = GetIdentityFromContext(r.Context())
		gotBearer, bearerOK = GetBearerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	middleware.Authenticate(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, identityOK)
	assert.Equal(t, Identity{ID: 7, Email: "maria@example.com", Role: "client"}, gotIdentity)
	require.True(t, bearerOK)
	assert.Equal(t, token, gotBearer, "raw token is kept for gateway forwarding")
}

func TestAuthenticateRejections(t *testing.T) {
	middleware := NewAuthMiddleware(testJWTService())
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	})

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"malformed":      "Bearer",
		"expired token":  "Bearer " + signToken(t, "client", time.Now().Add(-time.Hour)),
		"garbage token":  "Bearer not.a.token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			recorder := httptest.NewRecorder()
			middleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestRequireVeterinarian(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	vetCtx := context.WithValue(context.Background(), UserIDKey, 3)
	vetCtx = context.WithValue(vetCtx, UserEmailKey, "vet@example.com")
	vetCtx = context.WithValue(vetCtx, UserRoleKey, gateway.RoleVeterinarian)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/veterinarian", nil).WithContext(vetCtx)
	recorder := httptest.NewRecorder()
	RequireVeterinarian(next).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	clientCtx := context.WithValue(context.Background(), UserIDKey, 7)
	clientCtx = context.WithValue(clientCtx, UserEmailKey, "maria@example.com")
	clientCtx = context.WithValue(clientCtx, UserRoleKey, "client")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/veterinarian", nil).WithContext(clientCtx)
	recorder = httptest.NewRecorder()
	RequireVeterinarian(next).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/veterinarian", nil)
	recorder := httptest.NewRecorder()
	RequireRole(gateway.RoleVeterinarian)(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
