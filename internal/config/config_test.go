package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data/model.json", cfg.ModelPath)
	assert.Equal(t, 30, cfg.RequestTimeoutSec)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.ShutdownGraceSec)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MODEL_PATH", "/var/lib/credit/model.json")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/credit/model.json", cfg.ModelPath)
	assert.Equal(t, 10, cfg.RateLimitPerMin)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SEC", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
