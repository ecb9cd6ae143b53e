package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "JWT_SECRET", "JWT_ISSUER", "BATCH_CONCURRENCY", "MAX_BATCH_SIZE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, 4, cfg.BatchConcurrency)
	require.Equal(t, 500, cfg.MaxBatchSize)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("JWT_ISSUER", "issuer")
	t.Setenv("BATCH_CONCURRENCY", "8")
	t.Setenv("MAX_BATCH_SIZE", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()
	require.Equal(t, ":9999", cfg.HTTPAddress)
	require.Equal(t, "issuer", cfg.JWTIssuer)
	require.Equal(t, 8, cfg.BatchConcurrency)
	require.Equal(t, 500, cfg.MaxBatchSize)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadIgnoresNonPositiveConcurrency(t *testing.T) {
	t.Setenv("BATCH_CONCURRENCY", "0")
	require.Equal(t, 4, Load().BatchConcurrency)
}
