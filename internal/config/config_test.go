package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Mode:     "local",
			MinScore: 0,
			Remote: RemoteScoringConfig{
				Timeout: 30 * time.Second,
			},
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "text",
			SupportedFormats: []string{"json", "text", "markdown", "csv"},
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid local config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("invalid scoring mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scoring.Mode = "hybrid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid scoring mode")
	})

	t.Run("remote mode requires url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scoring.Mode = "remote"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "scoring.remote.url is required")
	})

	t.Run("remote mode with url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scoring.Mode = "remote"
		cfg.Scoring.Remote.URL = "https://scoring.example.com/api/score"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("remote mode requires positive timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scoring.Mode = "remote"
		cfg.Scoring.Remote.URL = "https://scoring.example.com/api/score"
		cfg.Scoring.Remote.Timeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("min score bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scoring.MinScore = 101
		assert.Error(t, cfg.Validate())

		cfg.Scoring.MinScore = -1
		assert.Error(t, cfg.Validate())

		cfg.Scoring.MinScore = 100
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default format must be supported", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.DefaultFormat = "xml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid default format")
	})
}

func TestValidateTLSConfig(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.ValidateTLSConfig())
	})

	t.Run("server mode requires cert and key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.TLS.Mode = "server"
		assert.Error(t, cfg.ValidateTLSConfig())

		cfg.Server.TLS.CertFile = "/etc/resumerank/tls.crt"
		assert.Error(t, cfg.ValidateTLSConfig())

		cfg.Server.TLS.KeyFile = "/etc/resumerank/tls.key"
		assert.NoError(t, cfg.ValidateTLSConfig())
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.TLS.Mode = "mutual"
		assert.Error(t, cfg.ValidateTLSConfig())
	})
}

func TestApplyFallbacks(t *testing.T) {
	t.Run("api keys from environment", func(t *testing.T) {
		t.Setenv("RESUMERANK_SERVER_APIKEYS", " key-one , key-two ")

		cfg := validConfig()
		cfg.applyFallbacks()

		assert.Equal(t, []string{"key-one", "key-two"}, cfg.Server.APIKeys)
	})

	t.Run("config keys take precedence", func(t *testing.T) {
		t.Setenv("RESUMERANK_SERVER_APIKEYS", "env-key")

		cfg := validConfig()
		cfg.Server.APIKeys = []string{"config-key"}
		cfg.applyFallbacks()

		assert.Equal(t, []string{"config-key"}, cfg.Server.APIKeys)
	})

	t.Run("service instance generated", func(t *testing.T) {
		cfg := validConfig()
		cfg.Observability.ServiceName = "resumerank"
		cfg.applyFallbacks()

		assert.NotEmpty(t, cfg.Observability.ServiceInstance)
		assert.Contains(t, cfg.Observability.ServiceInstance, "resumerank-")
	})

	t.Run("debug log level enables console output", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.LogLevel = "debug"
		cfg.applyFallbacks()

		assert.True(t, cfg.Observability.ConsoleOutput)
	})
}
