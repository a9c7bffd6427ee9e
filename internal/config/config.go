// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Amadeus AmadeusConfig
	Output  OutputConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// AmadeusConfig holds API credentials and client tuning.
type AmadeusConfig struct {
	// ClientID and ClientSecret can also come from CLI flags, which take
	// precedence over the environment.
	ClientID     string `env:"AMADEUS_SEARCHER_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_SEARCHER_CLIENT_SECRET"`

	BaseURL     string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	HTTPTimeout time.Duration `env:"AMADEUS_HTTP_TIMEOUT" envDefault:"30s"`
	MaxRetries  int           `env:"AMADEUS_MAX_RETRIES" envDefault:"3"`

	// RequestsPerSecond and Burst bound the client-side request rate; the
	// Amadeus test tier allows ten transactions per second.
	RequestsPerSecond float64 `env:"AMADEUS_REQUESTS_PER_SECOND" envDefault:"10"`
	Burst             int     `env:"AMADEUS_BURST" envDefault:"10"`
}

// OutputConfig holds settings for result persistence.
type OutputConfig struct {
	// Dir is recreated on every run; prior results are discarded.
	Dir string `env:"SEARCHER_OUTPUT_DIR" envDefault:"last_search"`
}

// ServerConfig holds HTTP settings for serve mode.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration and exits the process when it is invalid.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	return cfg
}

// validate checks configuration values for correctness. Credentials are
// deliberately not required here: flags may still supply them.
func validate(cfg *Config) error {
	if cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
	}
	if cfg.Amadeus.HTTPTimeout <= 0 {
		return fmt.Errorf("AMADEUS_HTTP_TIMEOUT must be positive")
	}
	if cfg.Amadeus.MaxRetries < 1 {
		return fmt.Errorf("AMADEUS_MAX_RETRIES must be at least 1")
	}
	if cfg.Amadeus.RequestsPerSecond <= 0 {
		return fmt.Errorf("AMADEUS_REQUESTS_PER_SECOND must be positive")
	}
	if cfg.Amadeus.Burst < 1 {
		return fmt.Errorf("AMADEUS_BURST must be at least 1")
	}

	if cfg.Output.Dir == "" {
		return fmt.Errorf("SEARCHER_OUTPUT_DIR must not be empty")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	return nil
}

// HasCredentials reports whether both credential halves are set.
func (c *Config) HasCredentials() bool {
	return c.Amadeus.ClientID != "" && c.Amadeus.ClientSecret != ""
}
