package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/services"
	"github.com/shashiranjanraj/fintrack/pkg/logger"
	"github.com/shashiranjanraj/fintrack/pkg/middleware"
	"github.com/shashiranjanraj/fintrack/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"` // bcrypt caps input at 72 bytes
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if !bindJSON(w, r, &input) {
		return
	}

	session, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, session)
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if !bindJSON(w, r, &input) {
		return
	}

	session, err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusConflict, "Email already registered")
			return
		}
		logger.WithCtx(r.Context()).Error("registration failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", session.User.ID)
	response.Created(w, session)
}

// Profile handles GET /api/auth/profile.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	user, err := c.service.Profile(userID)
	if err != nil {
		notFoundOr(w, err, "User")
		return
	}

	response.Success(w, user)
}
