package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortly/booking-service/internal/domain"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, method jwt.SigningMethod, claims Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims(userID int64, role string) Claims {
	return Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func authTestServer(t *testing.T) (http.Handler, *domain.Identity) {
	t.Helper()

	var captured domain.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		captured = identity
		w.WriteHeader(http.StatusOK)
	})

	return Auth(testSecret, noopLogger{})(next), &captured
}

type noopLogger struct{}

func (noopLogger) Warn(format string, v ...interface{}) {}

func TestAuth_ValidToken(t *testing.T) {
	handler, captured := authTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims(42, "guest")))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, domain.RoleGuest, captured.Role)
}

func TestAuth_AdminRole(t *testing.T) {
	handler, captured := authTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims(1, "admin")))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, captured.IsAdmin())
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "missing header",
			header: "",
		},
		{
			name:   "not a bearer token",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "garbage token",
			header: "Bearer not.a.token",
		},
		{
			name: "wrong signing key",
			header: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(42, "guest")).
					SignedString([]byte("other-secret"))
				return "Bearer " + token
			}(),
		},
		{
			name: "expired token",
			header: func() string {
				claims := validClaims(42, "guest")
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
				return "Bearer " + token
			}(),
		},
		{
			name: "unknown role claim",
			header: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(42, "superuser")).
					SignedString(testSecret)
				return "Bearer " + token
			}(),
		},
		{
			name: "missing user claim",
			header: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(0, "guest")).
					SignedString(testSecret)
				return "Bearer " + token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})
			handler := Auth(testSecret, noopLogger{})(next)

			req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuth_NoneAlgorithmRejected(t *testing.T) {
	handler, _ := authTestServer(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(42, "guest")).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
