package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrServerEmpty         = errors.New("server cannot be empty")
	ErrNegativeTimeout     = errors.New("timeout cannot be negative")
	ErrInvalidLogLevel     = errors.New("log_level must be one of debug, info, warn, error")
	ErrTokenConflict       = errors.New("token and token_file cannot both be set")
	ErrTokenFileUnreadable = errors.New("failed to read token file")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("KWS configuration not found. Run 'kws init' to initialize")
	ErrConfigAlreadyExists  = errors.New("configuration file already exists")
)
