package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ListenAddr:      DefaultListenAddr,
		ProviderAPIKey:  "sk-test",
		ProviderBaseURL: DefaultProviderBaseURL,
		DefaultModel:    DefaultModel,
		ProviderTimeout: DefaultProviderTimeout,
		WorkerPoolSize:  DefaultWorkerPoolSize,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingProviderKey(t *testing.T) {
	cfg := validConfig()
	cfg.ProviderAPIKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider API key")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := validConfig()
	cfg.WorkerPoolSize = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.ProviderTimeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.DefaultModel = ""
	assert.Error(t, cfg.Validate())
}

func TestTracingEnabledNeedsAllThreeValues(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.TracingEnabled())

	cfg.LangfusePublicKey = "pk"
	cfg.LangfuseSecretKey = "sk"
	assert.False(t, cfg.TracingEnabled())

	cfg.LangfuseHost = "http://localhost:3000"
	assert.True(t, cfg.TracingEnabled())
}
