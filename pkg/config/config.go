// Package config provides configuration management functionality for the KWS application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Server                string        `yaml:"server"`
	Token                 string        `yaml:"token,omitempty"`
	TokenFile             string        `yaml:"token_file,omitempty"`
	InsecureSkipTLSVerify bool          `yaml:"insecure_skip_tls_verify"`
	Timeout               time.Duration `yaml:"timeout"`
	LogLevel              string        `yaml:"log_level"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server) == "" {
		return ErrServerEmpty
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeTimeout, c.Timeout)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Token != "" && c.TokenFile != "" {
		return ErrTokenConflict
	}

	return nil
}

// ResolveToken returns the bearer token, reading it from TokenFile when set.
func (c *Config) ResolveToken() (string, error) {
	if c.TokenFile == "" {
		return c.Token, nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenFileUnreadable, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// expandTildes expands tilde (~) in configuration paths to the user's home directory.
func (c *Config) expandTildes() error {
	if !strings.HasPrefix(c.TokenFile, "~") {
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	c.TokenFile = filepath.Join(homeDir, strings.TrimPrefix(c.TokenFile, "~"))
	return nil
}
