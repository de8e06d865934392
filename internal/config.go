package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Store selection: "memory" for the seeded demo catalog, or
	// "postgres" backed by DATABASE_URL.
	Store       string
	DatabaseURL string

	// Pagination defaults for the catalog pages
	PerPage     int
	InnerWindow int
	OuterWindow int

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected.
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		Store: getEnv("STORE", "memory"),

		PerPage:     getEnvInt("PER_PAGE", 10),
		InnerWindow: getEnvInt("INNER_WINDOW", 4),
		OuterWindow: getEnvInt("OUTER_WINDOW", 1),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if cfg.PerPage < 1 {
		return nil, fmt.Errorf("PER_PAGE must be at least 1, got: %d", cfg.PerPage)
	}
	if cfg.InnerWindow < 0 || cfg.OuterWindow < 0 {
		return nil, fmt.Errorf("INNER_WINDOW and OUTER_WINDOW must not be negative")
	}

	switch cfg.Store {
	case "memory":
		// nothing to validate
	case "postgres":
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE is 'postgres'")
		}
	default:
		return nil, fmt.Errorf("STORE must be either 'memory' or 'postgres', got: %s", cfg.Store)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
