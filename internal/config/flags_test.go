package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestParseFlags_AllProvided(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{
		"-a", "http://api.houseiq.local/api",
		"-request-timeout", "45s",
		"-credentials-file", "/tmp/creds.json",
		"-health-interval", "1m",
		"-c", "/tmp/config.json",
	})

	assert.Equal(t, "http://api.houseiq.local/api", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/creds.json", cfg.Storage.CredentialsPath)
	assert.Equal(t, time.Minute, cfg.Workers.HealthInterval)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{"-config", "/etc/houseiq.json"})

	assert.Equal(t, "/etc/houseiq.json", cfg.JSONFilePath)
}

func TestParseFlags_NoneProvided(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), nil)

	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.CredentialsPath)
	assert.Zero(t, cfg.Workers.HealthInterval)
}
