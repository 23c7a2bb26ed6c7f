package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/fintrack/pkg/database"
	"github.com/shashiranjanraj/fintrack/pkg/response"
)

// Health handles GET /health. It reports the database connection state so
// orchestrators can distinguish "up" from "up but wedged".
func Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unavailable"
	}

	response.Success(w, map[string]string{
		"status":   "ok",
		"database": dbStatus,
	})
}
