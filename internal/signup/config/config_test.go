package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signupcheck/internal/signup/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Endpoints.AvailabilityURL)
	assert.Equal(t, "https://api.pwnedpasswords.com", cfg.Endpoints.BreachURL)
	assert.Equal(t, 800*time.Millisecond, cfg.Pipeline.DebounceWindow)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "development", cfg.Logging.Mode)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SIGNUP_AVAILABILITY_URL", "http://localhost:9090")
	t.Setenv("SIGNUP_DEBOUNCE_WINDOW", "200ms")
	t.Setenv("SIGNUP_REQUEST_TIMEOUT", "2s")
	t.Setenv("SIGNUP_LOGGER_MODE", "production")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.Endpoints.AvailabilityURL)
	assert.Equal(t, 200*time.Millisecond, cfg.Pipeline.DebounceWindow)
	assert.Equal(t, 2*time.Second, cfg.Pipeline.RequestTimeout)
	assert.Equal(t, "production", cfg.Logging.Mode)
}
