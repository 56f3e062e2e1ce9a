package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 500*time.Millisecond, cfg.Mock.ListDelay)
	require.Equal(t, 0.05, cfg.Mock.TransferFaultRate)
	require.Equal(t, 20*time.Second, cfg.AI.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MOCK_LIST_DELAY", "10ms")
	t.Setenv("MOCK_READ_FAULT_RATE", "0.5")
	t.Setenv("MOCK_SEED", "42")
	t.Setenv("AI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.HTTP.Port)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, 10*time.Millisecond, cfg.Mock.ListDelay)
	require.Equal(t, 0.5, cfg.Mock.ReadFaultRate)
	require.Equal(t, int64(42), cfg.Mock.Seed)
	require.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}
