package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "SERVER_PORT", "PORT", "JWT_EXPIRATION", "DEBUG", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "ponto.db", cfg.DatabaseURL)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.False(t, cfg.IsPostgres())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://postgres@localhost:5432/ponto")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.True(t, cfg.IsPostgres())
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiration)
	assert.True(t, cfg.Debug)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "forever")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.False(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		t.Setenv("APP_ENV", "")
		return Load()
	}

	cfg := base()
	cfg.ServerPort = "http"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DatabaseURL = " "
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Environment = "production"
	cfg.JWTSecret = "your-super-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "s3cr3t"
	cfg.AdminPasswordHash = ""
	assert.Error(t, cfg.Validate())

	cfg.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, cfg.Validate())
}
