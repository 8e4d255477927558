package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/resortly/booking-service/internal/api/handlers"
	"github.com/resortly/booking-service/internal/domain"
)

const bearerPrefix = "Bearer "

// Claims is the JWT payload issued by the session service.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Logger is the logging surface the middleware needs.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth verifies the bearer token and resolves it to a domain.Identity in
// the request context. Requests without a valid token are rejected with
// 401 before any handler — and therefore any persistence — runs.
// Token issuance is owned by the external session service; this
// middleware only verifies.
func Auth(secret []byte, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "missing authorization token")
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w, "invalid authorization header format")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims,
				func(token *jwt.Token) (interface{}, error) {
					return secret, nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				log.Warn("auth: token verification failed: %v", err)
				handlers.RespondUnauthorized(w, "invalid token")
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil || claims.UserID <= 0 {
				log.Warn("auth: malformed claims: user=%d, role=%q", claims.UserID, claims.Role)
				handlers.RespondUnauthorized(w, "invalid token")
				return
			}

			identity := domain.Identity{UserID: claims.UserID, Role: role}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
