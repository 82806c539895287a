package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/api/httpx"
	"github.com/quantity262/Myweb/internal/auth"
	"github.com/quantity262/Myweb/internal/metrics"
)

type claimsKey struct{}

// GetClaims returns the verified token claims attached by Auth.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

type AuthMiddleware struct {
	tm *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tm: tm}
}

// Auth enforces `Authorization: Bearer <token>`. A missing or non-bearer
// header is 401; a present but invalid or expired token is 403 (kept from
// the original API for client compatibility). Expired and malformed
// tokens are logged distinctly but answered identically.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			metrics.AuthFailures.WithLabelValues("missing_token").Inc()
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing access token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.tm.Verify(token)
		if err != nil {
			if errors.Is(err, apperr.ErrTokenExpired) {
				metrics.AuthFailures.WithLabelValues("expired_token").Inc()
				slog.Debug("expired token", "path", r.URL.Path)
			} else {
				metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
				slog.Debug("invalid token", "path", r.URL.Path)
			}
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "invalid access token", nil)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only authenticated callers with the given role. It
// must sit behind Auth; an unauthenticated context is rejected outright.
func RequireRole(need string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || claims.Role != need {
				metrics.AuthFailures.WithLabelValues("forbidden").Inc()
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "admin privileges required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
