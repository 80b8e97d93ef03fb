package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DRIVER", "TOKEN_TTL", "LOGIN_TOKEN_TTL", "CACHE_SIZE", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.LoginTokenTTL)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "20m")
	t.Setenv("CACHE_SIZE", "50")
	t.Setenv("REQUESTS_PER_SECOND", "12.5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 20*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 50, cfg.CacheSize)
	assert.Equal(t, 12.5, cfg.RequestsPerSecond)
}

func TestValidate(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Error(t, cfg.Validate())

	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	cfg = Load()
	assert.Error(t, cfg.Validate(), "missing JWT secret must still fail")

	t.Setenv("JWT_SECRET", "secret")
	cfg = Load()
	assert.NoError(t, cfg.Validate())
}

func TestMalformedEnvValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")
	t.Setenv("TOKEN_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}
