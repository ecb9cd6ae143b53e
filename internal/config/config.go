// Package config centralises configuration parsing for the workout tools.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values shared by the API and the batch tool.
type Config struct {
	HTTPAddress      string
	JWTSecret        string
	JWTIssuer        string
	BatchConcurrency int           // Maximum number of packages computed at once.
	MaxBatchSize     int           // Upper bound on packages accepted by a single API request.
	ShutdownTimeout  time.Duration // Grace period for in-flight requests on shutdown.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:      getEnv("HTTP_ADDRESS", ":8080"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:        getEnv("JWT_ISSUER", "i5e.identity"),
		BatchConcurrency: getIntEnv("BATCH_CONCURRENCY", 4),
		MaxBatchSize:     getIntEnv("MAX_BATCH_SIZE", 500),
		ShutdownTimeout:  getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
