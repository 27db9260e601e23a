package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

const AppName = "auth-service"

// Constants for time-based configuration defaults.
const (
	// DefaultTokenExpiry is the fixed lifetime of every access token.
	// Blacklist entries reuse it as their TTL, which is always at least
	// the token's remaining lifetime.
	DefaultTokenExpiry = 2 * time.Hour
)

// Config holds all application configuration, including secrets.
// Built once at startup and treated as immutable afterwards.
type Config struct {
	AppName       string
	AppPort       string
	AppUrl        string
	DBUrl         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecretKey  []byte
	TokenExpiry   time.Duration
}

// LoadConfig reads the environment and returns a *Config, exiting the
// process when a required value is missing. Secrets never get logged.
func LoadConfig() *Config {
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		utils.Logger.Fatal("REDIS_ADDR env var is missing")
	}

	// Optional: empty password and DB 0 are valid Redis defaults.
	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.Logger.Fatalf("Invalid REDIS_DB value: %q", raw)
		}
		redisDB = parsed
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET_KEY env var is missing")
	}
	if len(jwtSecret) < 32 {
		utils.Logger.Fatal("JWT_SECRET_KEY must be at least 32 bytes for HS256")
	}

	tokenExpiry := DefaultTokenExpiry
	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			utils.Logger.Fatalf("Invalid TOKEN_EXPIRY duration: %q", raw)
		}
		tokenExpiry = parsed
	}

	utils.Logger.Debugf("App can be accessed at: %s", appUrl)

	return &Config{
		AppName:       AppName,
		AppPort:       appPort,
		AppUrl:        appUrl,
		DBUrl:         dbUrl,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
		JWTSecretKey:  []byte(jwtSecret),
		TokenExpiry:   tokenExpiry,
	}
}
