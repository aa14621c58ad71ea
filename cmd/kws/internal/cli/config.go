// Package cli provides common configuration and wiring functions for the KWS CLI.
package cli

import (
	"fmt"

	"github.com/lerenn/kws/pkg/config"
	"github.com/lerenn/kws/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// LogJSON switches log output to JSON.
	LogJSON bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
func LoadConfig() (config.Config, error) {
	cfg, err := NewConfigManager().GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// LogLevel resolves the effective log level from the flags and the configuration.
func LogLevel(cfg config.Config) logger.Level {
	switch {
	case Verbose:
		return logger.DebugLevel
	case Quiet:
		return logger.ErrorLevel
	default:
		return logger.ParseLevel(cfg.LogLevel)
	}
}
