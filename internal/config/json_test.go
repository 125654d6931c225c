package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0"},
		"adapter": {"base_url": "http://json.houseiq.local/api", "request_timeout": "25s"},
		"storage": {"credentials_path": "/opt/houseiq/creds.json"},
		"workers": {"health_interval": "45s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "http://json.houseiq.local/api", cfg.Adapter.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/opt/houseiq/creds.json", cfg.Storage.CredentialsPath)
	assert.Equal(t, 45*time.Second, cfg.Workers.HealthInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"adapter": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
