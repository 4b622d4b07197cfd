package config

import (
	"os"

	"bedflow/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
}

// DataConfig decides where the weekly services table is loaded from.
// Exactly one source must be configured: a file path or a database URL.
type DataConfig struct {
	File        string
	DatabaseURL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			File:        os.Getenv("DATA_FILE"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if cfg.Data.File == "" && cfg.Data.DatabaseURL == "" {
		return nil, errors.ConfigInvalid("one of DATA_FILE or DATABASE_URL is required")
	}
	if cfg.Data.File != "" && cfg.Data.DatabaseURL != "" {
		return nil, errors.ConfigInvalid("DATA_FILE and DATABASE_URL are mutually exclusive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
