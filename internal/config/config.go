package config

import (
	"errors"
	"os"
	"time"
)

// Config is the process-wide static configuration. Values are read once
// at startup; there is no runtime reload.
type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string

	JWTSecret     string
	TokenTTL      time.Duration // issuer default, independent of LoginTokenTTL
	LoginTokenTTL time.Duration

	CacheSize int
	CacheTTL  time.Duration

	RedisURL          string
	LoginWindow       time.Duration
	LoginMaxAttempts  int
	RequestsPerSecond float64
}

func Load() *Config {
	return &Config{
		Port:           getEnvAsString("PORT", "8080"),
		DatabaseDriver: getEnvAsString("DATABASE_DRIVER", "postgres"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getEnvAsDuration("TOKEN_TTL", 15*time.Minute),
		LoginTokenTTL: getEnvAsDuration("LOGIN_TOKEN_TTL", 30*time.Minute),

		CacheSize: getEnvAsInt("CACHE_SIZE", 100),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		RedisURL:          os.Getenv("REDIS_URL"),
		LoginWindow:       getEnvAsDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),
		LoginMaxAttempts:  getEnvAsInt("LOGIN_MAX_ATTEMPTS", 10),
		RequestsPerSecond: getEnvAsFloat("REQUESTS_PER_SECOND", 0),
	}
}

// Validate rejects configurations the service cannot safely run with.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}
