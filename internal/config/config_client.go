package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a value is absent from every
// configuration source.
const (
	DefaultBaseURL        = "http://localhost:8080/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultHealthInterval = 30 * time.Second
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown on the dashboard.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HouseIQ backend base URL, including the API prefix.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups credential store settings.
type ClientStorage struct {
	// CredentialsPath is the credential store file path; empty means the
	// store picks a default under the user config directory.
	CredentialsPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HealthInterval defines how often the backend health poller runs.
	HealthInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains gateway addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains credential store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in development defaults for anything
// left unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CredentialsPath: cfg.Storage.CredentialsPath,
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.HealthInterval == 0 {
		cfg.Workers.HealthInterval = DefaultHealthInterval
	}
}
