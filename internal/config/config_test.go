package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Amadeus.HTTPTimeout)
	assert.Equal(t, 3, cfg.Amadeus.MaxRetries)
	assert.Equal(t, 10.0, cfg.Amadeus.RequestsPerSecond)
	assert.Equal(t, "last_search", cfg.Output.Dir)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AMADEUS_SEARCHER_CLIENT_ID", "id-from-env")
	t.Setenv("AMADEUS_SEARCHER_CLIENT_SECRET", "secret-from-env")
	t.Setenv("AMADEUS_BASE_URL", "https://api.amadeus.com")
	t.Setenv("AMADEUS_HTTP_TIMEOUT", "5s")
	t.Setenv("SEARCHER_OUTPUT_DIR", "results")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "id-from-env", cfg.Amadeus.ClientID)
	assert.Equal(t, "secret-from-env", cfg.Amadeus.ClientSecret)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Amadeus.HTTPTimeout)
	assert.Equal(t, "results", cfg.Output.Dir)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.HasCredentials())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantErr string
	}{
		{
			name:    "negative timeout",
			envKey:  "AMADEUS_HTTP_TIMEOUT",
			envVal:  "-1s",
			wantErr: "AMADEUS_HTTP_TIMEOUT",
		},
		{
			name:    "zero retries",
			envKey:  "AMADEUS_MAX_RETRIES",
			envVal:  "0",
			wantErr: "AMADEUS_MAX_RETRIES",
		},
		{
			name:    "zero rate",
			envKey:  "AMADEUS_REQUESTS_PER_SECOND",
			envVal:  "0",
			wantErr: "AMADEUS_REQUESTS_PER_SECOND",
		},
		{
			name:    "port out of range",
			envKey:  "SERVER_PORT",
			envVal:  "70000",
			wantErr: "SERVER_PORT",
		},
		{
			name:    "bad log level",
			envKey:  "LOG_LEVEL",
			envVal:  "verbose",
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			envKey:  "LOG_FORMAT",
			envVal:  "xml",
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHasCredentials(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasCredentials())

	cfg.Amadeus.ClientID = "id"
	assert.False(t, cfg.HasCredentials())

	cfg.Amadeus.ClientSecret = "secret"
	assert.True(t, cfg.HasCredentials())
}
