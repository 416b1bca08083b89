// Package config holds the process configuration assembled once at startup
// and passed by injection to every component that needs it.
package config

import (
	"errors"
	"time"
)

const (
	DefaultListenAddr      = ":8000"
	DefaultProviderBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel           = "anthropic/claude-3.5-sonnet"
	DefaultProviderTimeout = 60 * time.Second
	DefaultWorkerPoolSize  = 8
	DefaultLangfuseHost    = "http://localhost:3000"
)

// Config is read-only after Validate passes. Safe for concurrent reads.
type Config struct {
	ListenAddr string

	ProviderAPIKey  string
	ProviderBaseURL string
	DefaultModel    string
	ProviderTimeout time.Duration

	WorkerPoolSize int

	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseHost      string

	MetricsAPIKey string
	Debug         bool
}

// Validate fails fast on required fields. A missing provider key is fatal at
// startup, never at request time.
func (c *Config) Validate() error {
	if c.ProviderAPIKey == "" {
		return errors.New("provider API key is required")
	}
	if c.ProviderBaseURL == "" {
		return errors.New("provider base URL is required")
	}
	if c.DefaultModel == "" {
		return errors.New("default model is required")
	}
	if c.ProviderTimeout <= 0 {
		return errors.New("provider timeout must be positive")
	}
	if c.WorkerPoolSize <= 0 {
		return errors.New("worker pool size must be positive")
	}
	return nil
}

// TracingEnabled reports whether span export is configured. When false the
// recorder runs as a no-op and never fails a request.
func (c *Config) TracingEnabled() bool {
	return c.LangfusePublicKey != "" && c.LangfuseSecretKey != "" && c.LangfuseHost != ""
}
