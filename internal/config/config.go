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
	Server  ServerConfig
	Dataset DatasetConfig
	Search  SearchConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// RateLimitRPS is the sustained per-client request rate for the search endpoint
	RateLimitRPS float64 `env:"SERVER_RATE_LIMIT_RPS" envDefault:"10"`

	// RateLimitBurst is the per-client burst size for the search endpoint
	RateLimitBurst int `env:"SERVER_RATE_LIMIT_BURST" envDefault:"20"`
}

// DatasetConfig holds flight dataset settings for the server binary.
// The CLI takes the dataset path as a positional argument instead.
type DatasetConfig struct {
	Path string `env:"DATASET_PATH" envDefault:"data/flights.csv"`
}

// SearchConfig holds the default layover window applied when a request
// leaves the bounds unset.
type SearchConfig struct {
	MinLayover time.Duration `env:"SEARCH_MIN_LAYOVER" envDefault:"1h"`
	MaxLayover time.Duration `env:"SEARCH_MAX_LAYOVER" envDefault:"6h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from the environment, preferring an optional
// .env file for local development.
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

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("SERVER_RATE_LIMIT_RPS must be positive")
	}
	if cfg.Server.RateLimitBurst < 1 {
		return fmt.Errorf("SERVER_RATE_LIMIT_BURST must be at least 1")
	}

	if cfg.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH must not be empty")
	}

	if cfg.Search.MinLayover < 0 {
		return fmt.Errorf("SEARCH_MIN_LAYOVER cannot be negative")
	}
	if cfg.Search.MaxLayover < cfg.Search.MinLayover {
		return fmt.Errorf("SEARCH_MAX_LAYOVER (%s) must not be below SEARCH_MIN_LAYOVER (%s)",
			cfg.Search.MaxLayover, cfg.Search.MinLayover)
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
