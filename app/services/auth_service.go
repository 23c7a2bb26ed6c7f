// Package services holds the business logic between controllers and
// repositories.
package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken means a registration used an email that already exists.
	ErrEmailTaken = errors.New("services: email already registered")
	// ErrInvalidCredentials means login failed; it deliberately does not say
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("services: invalid credentials")
)

// Session is the result of a successful login or registration.
type Session struct {
	User         models.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
}

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt-hashed password and returns a fresh
// session. The store is left untouched when the email is already taken.
func (s *AuthService) Register(name, email, password string) (*Session, error) {
	taken, err := s.users.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("register: check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	return s.newSession(user)
}

// Login verifies the credentials and returns a session on success.
func (s *AuthService) Login(email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// Profile returns the user record for an authenticated user id.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}

func (s *AuthService) newSession(user models.User) (*Session, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	refresh, err := auth.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Session{User: user, Token: token, RefreshToken: refresh}, nil
}
