package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/pkg/testkit"
)

func TestCompaniesRequireAuth(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodGet, "/api/companies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	code, _ = testkit.DoJSON(t, h, http.MethodGet, "/api/companies", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestCompanyLifecycle(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/companies", token, map[string]interface{}{
		"name":   "Acme",
		"budget": 100000,
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.Company
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Acme", created.Name)
	assert.Equal(t, models.StatusActive, created.Status, "status defaults to active")

	code, env = testkit.DoJSON(t, h, http.MethodGet, "/api/companies", token, nil)
	require.Equal(t, http.StatusOK, code)
	var list []models.Company
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	code, env = testkit.DoJSON(t, h, http.MethodPut, "/api/companies/1", token, map[string]interface{}{
		"name":   "Acme Corp",
		"status": "inactive",
		"budget": 120000,
		"spent":  5000,
	})
	require.Equal(t, http.StatusOK, code)

	var updated models.Company
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, models.StatusInactive, updated.Status)

	code, env = testkit.DoJSON(t, h, http.MethodGet, "/api/companies/1", token, nil)
	require.Equal(t, http.StatusOK, code)
	var shown models.Company
	require.NoError(t, json.Unmarshal(env.Data, &shown))
	assert.Equal(t, "Acme Corp", shown.Name)
}

func TestCompanyNotFound(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)

	code, env := testkit.DoJSON(t, h, http.MethodGet, "/api/companies/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Company not found", env.Message)
}

func TestCompanyInvalidID(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)

	code, env := testkit.DoJSON(t, h, http.MethodGet, "/api/companies/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid id", env.Message)
}

func TestCompanyNegativeBudgetRejected(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/companies", token, map[string]interface{}{
		"name":   "Bad",
		"budget": -5,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "budget")
}
