// Package testkit holds shared helpers for HTTP and repository tests:
// an in-memory database, a fully routed handler and a JSON request driver.
package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/routes"
	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"github.com/shashiranjanraj/fintrack/pkg/router"
)

// NewDB opens a private in-memory sqlite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Pod{},
		&models.Vendor{},
		&models.Invoice{},
		&models.Payment{},
	))

	return db
}

// NewHandler returns the API handler with every route mounted on db.
func NewHandler(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()

	r := router.New()
	routes.RegisterAPI(r, db)
	return r.Handler()
}

// Envelope mirrors the JSON response wrapper for assertions.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// DoJSON sends a JSON request and decodes the envelope. token is attached as
// a bearer credential when non-empty.
func DoJSON(t *testing.T, h http.Handler, method, target, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
			"response is not an envelope: %s", rec.Body.String())
	}

	return rec.Code, env
}

// SeedUser creates a user with the given role and returns it with a valid
// access token.
func SeedUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Password: hash, Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	return user, token
}
