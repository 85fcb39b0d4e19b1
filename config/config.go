package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT     string
	GIN_MODE string

	// DATA_DIR holds the content documents; I18N_DIR the frontend's en.json /
	// fr.json dictionaries. An empty I18N_DIR disables the mirror.
	DATA_DIR string
	I18N_DIR string

	// STORAGE_DRIVER is "file" (default) or "postgres" (needs DB_URL).
	STORAGE_DRIVER string
	DB_URL         string

	CORS_ORIGIN string

	AUTH0_DOMAIN               string
	AUTH0_AUDIENCE             string
	AUTH0_ROLES_CLAIM          string
	AUTH0_EMAIL_CLAIM          string
	AUTH0_ALLOWED_ADMIN_EMAILS string

	// JWT_SECRET enables HS256 tokens when no Auth0 tenant is configured
	// (local development).
	JWT_SECRET string

	RATE_LIMIT_REQUESTS int
	RATE_LIMIT_WINDOW   time.Duration
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "3001")
	GIN_MODE = getEnv("GIN_MODE", "debug")

	DATA_DIR = getEnv("DATA_DIR", "data")
	I18N_DIR = getEnv("I18N_DIR", "")

	STORAGE_DRIVER = strings.ToLower(getEnv("STORAGE_DRIVER", "file"))
	if STORAGE_DRIVER == "postgres" {
		DB_URL = mustEnv("DB_URL")
	}

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	AUTH0_DOMAIN = getEnv("AUTH0_DOMAIN", "")
	AUTH0_AUDIENCE = getEnv("AUTH0_AUDIENCE", "")
	AUTH0_ROLES_CLAIM = getEnv("AUTH0_ROLES_CLAIM", "https://your.app/roles")
	AUTH0_EMAIL_CLAIM = getEnv("AUTH0_EMAIL_CLAIM", "email")
	AUTH0_ALLOWED_ADMIN_EMAILS = getEnv("AUTH0_ALLOWED_ADMIN_EMAILS", "")
	JWT_SECRET = getEnv("JWT_SECRET", "")

	RATE_LIMIT_REQUESTS = getIntEnv("RATE_LIMIT_REQUESTS", 10)
	RATE_LIMIT_WINDOW = getDurationEnv("RATE_LIMIT_WINDOW", time.Minute)
}

// AuthIssuer is the token issuer URL for the configured Auth0 tenant.
func AuthIssuer() string {
	if AUTH0_DOMAIN == "" {
		return ""
	}
	return "https://" + strings.TrimSuffix(AUTH0_DOMAIN, "/") + "/"
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		slog.Error("Missing required environment variable", "key", key)
		os.Exit(1)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("invalid integer value, using default", "key", key, "default", fallback)
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("invalid duration value, using default", "key", key, "default", fallback)
	}
	return fallback
}
