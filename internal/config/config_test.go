package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_URL", "http://localhost:3000")
	t.Setenv("DB_URL", "postgres://user:pw@localhost:5432/app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef0123456789abcdef")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("TOKEN_EXPIRY", "")

	cfg := LoadConfig()

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Empty(t, cfg.RedisPassword)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, DefaultTokenExpiry, cfg.TokenExpiry)
	require.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.JWTSecretKey)
}

func TestLoadConfigReadsOptionalValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOKEN_EXPIRY", "90m")

	cfg := LoadConfig()

	require.Equal(t, "hunter2", cfg.RedisPassword)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 90*time.Minute, cfg.TokenExpiry)
}
