package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultHealthInterval, cfg.Workers.HealthInterval)
}

func TestClientConfig_ApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://custom/api", RequestTimeout: time.Minute},
		Workers: ClientWorkers{HealthInterval: 5 * time.Second},
	}
	cfg.applyDefaults()

	assert.Equal(t, "http://custom/api", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Workers.HealthInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080/api", RequestTimeout: time.Second},
				Workers: ClientWorkers{HealthInterval: time.Second},
			},
		},
		{
			name: "missing base url",
			cfg: ClientConfig{
				Adapter: ClientAdapter{RequestTimeout: time.Second},
				Workers: ClientWorkers{HealthInterval: time.Second},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero timeout",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080/api"},
				Workers: ClientWorkers{HealthInterval: time.Second},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero health interval",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080/api", RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigBuilder_MergesSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://first/api"}},
		&StructuredConfig{Adapter: Adapter{RequestTimeout: 10 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://first/api", cfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}
