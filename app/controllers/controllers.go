// Package controllers holds the HTTP handlers. Controllers bind and
// validate input, call a service or repository, and write the response
// envelope; they contain no business logic of their own.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/fintrack/pkg/bind"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"gorm.io/gorm"
)

// pathID parses the {id} path parameter. Writes a 400 and returns false on
// a non-numeric id.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body into dest. On failure the
// error response has already been written and false is returned.
func bindJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	errs, err := bind.JSON(r, dest)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return false
	}
	return true
}

// notFoundOr maps gorm.ErrRecordNotFound to a 404 and anything else to a
// 500, keeping controller bodies short.
func notFoundOr(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w, what+" not found")
		return
	}
	response.Error(w, http.StatusInternalServerError, "Internal Server Error")
}
