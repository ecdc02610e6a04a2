// Package config has the configuration file for the app
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port    string
	Env     string
	CSVPath string // Importer source file
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:    getEnvWithDefault("PORT", "8080"),
		Env:     getEnvWithDefault("ENV", "dev"),
		CSVPath: getEnvWithDefault("CSV_PATH", "assets/pills.csv"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	return cfg, nil
}

// getEnvWithDefault returns the environment variable value or a default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
