// Package config provides configuration for the project manager: a koanf
// loader for file and environment values, and Settings for values the user
// edits in the application.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults
const (
	DefaultStoreURL       = "nats://127.0.0.1:4222"
	DefaultBucket         = "projects"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultLanguage       = "system"
)

// Config is the loaded application configuration
type Config struct {
	Store StoreConfig `koanf:"store"`
	Log   LogConfig   `koanf:"log"`
}

// StoreConfig locates the remote project table
type StoreConfig struct {
	URL            string        `koanf:"url"`
	Bucket         string        `koanf:"bucket"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Store: StoreConfig{
			URL:            DefaultStoreURL,
			Bucket:         DefaultBucket,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

var (
	ErrEmptyStoreURL  = errors.New("store.url is required")
	ErrEmptyBucket    = errors.New("store.bucket is required")
	ErrInvalidTimeout = errors.New("store.request_timeout must be positive")
)

// Validate checks the configuration for values the application cannot use
func (c Config) Validate() error {
	if c.Store.URL == "" {
		return ErrEmptyStoreURL
	}
	if c.Store.Bucket == "" {
		return ErrEmptyBucket
	}
	if c.Store.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q: must be console or json", c.Log.Format)
	}
	return nil
}
