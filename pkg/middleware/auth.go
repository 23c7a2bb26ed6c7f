package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"github.com/shashiranjanraj/fintrack/pkg/response"
)

type authCtxKey struct{}

// Auth is the gate applied to every protected route. It extracts the bearer
// token from the Authorization header, verifies it, and stores the decoded
// identity in the request context for downstream handlers.
//
//   - no token          → 401 "Access token required"
//   - bad/expired token → 403 "Invalid or expired token"
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		if token == "" {
			response.Unauthorized(w, "Access token required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Forbidden(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authCtxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the verified token claims stored by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(authCtxKey{}).(*auth.Claims)
	return claims, ok
}

// UserIDFromCtx returns the authenticated user's id, if any.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// EmailFromCtx returns the authenticated user's email, if any.
func EmailFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		return "", false
	}
	return claims.Email, true
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		return "", false
	}
	return claims.Role, true
}
