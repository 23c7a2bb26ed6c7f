package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/app/services"
	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"github.com/shashiranjanraj/fintrack/pkg/testkit"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testkit.NewDB(t)
	users := repositories.NewUserRepository(db)
	svc := services.NewAuthService(users)

	session, err := svc.Register("Jane", "jane@example.com", "a strong password")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, session.User.Role)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.RefreshToken)

	// Stored password is a hash, not the plain text.
	stored, err := users.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "a strong password", stored.Password)

	// Token decodes back to the same identity.
	claims, err := auth.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)

	login, err := svc.Login("jane@example.com", "a strong password")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmailLeavesStoreUntouched(t *testing.T) {
	db := testkit.NewDB(t)
	users := repositories.NewUserRepository(db)
	svc := services.NewAuthService(users)

	_, err := svc.Register("Jane", "jane@example.com", "a strong password")
	require.NoError(t, err)

	_, err = svc.Register("Evil Jane", "jane@example.com", "another password")
	assert.True(t, errors.Is(err, services.ErrEmailTaken), "got %v", err)

	count, err := users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testkit.NewDB(t)
	svc := services.NewAuthService(repositories.NewUserRepository(db))

	_, err := svc.Register("Jane", "jane@example.com", "a strong password")
	require.NoError(t, err)

	_, err = svc.Login("jane@example.com", "wrong password")
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials), "got %v", err)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := testkit.NewDB(t)
	svc := services.NewAuthService(repositories.NewUserRepository(db))

	_, err := svc.Login("nobody@example.com", "whatever")
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials), "got %v", err)
}
