package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFromEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "http://env.houseiq.local/api")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_CREDENTIALS_PATH", "/var/lib/houseiq/creds.json")
	t.Setenv("WORKERS_HEALTH_INTERVAL", "15s")
	t.Setenv("APP_VERSION", "1.2.3")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "http://env.houseiq.local/api", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/houseiq/creds.json", cfg.Storage.CredentialsPath)
	assert.Equal(t, 15*time.Second, cfg.Workers.HealthInterval)
	assert.Equal(t, "1.2.3", cfg.App.Version)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Workers.HealthInterval)
}
