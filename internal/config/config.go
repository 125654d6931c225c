// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the HouseIQ
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the backend HTTP gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown on the dashboard screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the outbound HTTP gateway.
type Adapter struct {
	// BaseURL is the HouseIQ backend base URL, including the API prefix
	// (e.g. "http://localhost:8080/api").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local credential store.
type Storage struct {
	// CredentialsPath is the path of the JSON file holding the persisted
	// token and user profile. When empty, a default under the user config
	// directory is used.
	// Env: STORAGE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval defines how often the backend health poller runs.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
