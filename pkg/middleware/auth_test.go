package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"github.com/shashiranjanraj/fintrack/pkg/middleware"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middleware.UserIDFromCtx(r)
		require.True(t, ok, "claims missing from context")
		w.Header().Set("X-User-ID", "set")
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(t *testing.T, h http.Handler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMissingTokenRejected(t *testing.T) {
	rec := doRequest(t, protectedHandler(t), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Access token required", body["message"])
}

func TestBareBearerRejected(t *testing.T) {
	rec := doRequest(t, protectedHandler(t), "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedTokenRejected(t *testing.T) {
	rec := doRequest(t, protectedHandler(t), "Bearer not-a-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := auth.GenerateTokenWithTTL(3, "x@example.com", "user", -time.Minute)
	require.NoError(t, err)

	rec := doRequest(t, protectedHandler(t), "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidTokenPasses(t *testing.T) {
	token, err := auth.GenerateToken(9, "ok@example.com", "admin")
	require.NoError(t, err)

	rec := doRequest(t, protectedHandler(t), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "set", rec.Header().Get("X-User-ID"))
}

func TestContextAccessors(t *testing.T) {
	token, err := auth.GenerateToken(11, "ctx@example.com", "admin")
	require.NoError(t, err)

	var gotEmail, gotRole string
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = middleware.EmailFromCtx(r)
		gotRole, _ = middleware.RoleFromCtx(r)
	}))
	doRequest(t, h, "Bearer "+token)

	assert.Equal(t, "ctx@example.com", gotEmail)
	assert.Equal(t, "admin", gotRole)
}
