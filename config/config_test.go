package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "serviturnos")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "serviturnos", cfg.DB.Name)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "serviturnos")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_NAME", "serviturnos_test")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "serviturnos_test", cfg.DB.Name)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_USER", "serviturnos")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "serviturnos")
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
