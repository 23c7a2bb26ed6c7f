package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fintrack/config"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "sqlite", config.DatabaseDriver())
	assert.Equal(t, "8080", config.AppPort())
	assert.Equal(t, "local", config.AppEnv())
	assert.False(t, config.IsProduction())
}

func TestSetForTestingRestores(t *testing.T) {
	restore := config.SetForTesting("APP_PORT", "9999")
	assert.Equal(t, "9999", config.AppPort())

	restore()
	assert.Equal(t, "8080", config.AppPort())
}

func TestUnknownDriverFallsBack(t *testing.T) {
	t.Cleanup(config.SetForTesting("DB_DRIVER", "oracle"))
	assert.Equal(t, "sqlite", config.DatabaseDriver())
}

func TestDSNFollowsDriver(t *testing.T) {
	t.Cleanup(config.SetForTesting("DB_DRIVER", "postgres"))
	assert.Contains(t, config.DatabaseDSN(), "dbname=fintrack")

	t.Cleanup(config.SetForTesting("DATABASE_DSN", "host=db user=app"))
	assert.Equal(t, "host=db user=app", config.DatabaseDSN())
}

func TestCheckProductionSecrets(t *testing.T) {
	t.Cleanup(config.SetForTesting("APP_ENV", "production"))

	err := config.CheckProductionSecrets()
	assert.True(t, errors.Is(err, config.ErrMissingJWTSecret), "got %v", err)

	t.Cleanup(config.SetForTesting("JWT_SECRET", "a-real-secret"))
	assert.NoError(t, config.CheckProductionSecrets())
}

func TestCheckProductionSecretsIgnoredLocally(t *testing.T) {
	assert.NoError(t, config.CheckProductionSecrets())
}
