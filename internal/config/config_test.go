package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App: &config.AppConfig{
			Name:        "blogwatch",
			Environment: "test",
		},
		Discovery: &config.DiscoveryConfig{
			LookbackHours:  24,
			RequestTimeout: 10 * time.Second,
			UserAgent:      "blogwatch-test/1.0",
		},
		Browser: &config.BrowserConfig{
			Enabled: true,
			Timeout: 30 * time.Second,
		},
		Telegram: &config.TelegramConfig{
			BaseURL:   "https://api.telegram.org",
			ParseMode: "Markdown",
			Timeout:   10 * time.Second,
		},
		Server: &config.ServerConfig{
			Address: ":8080",
		},
		Schedule: &config.ScheduleConfig{},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "missing discovery section",
			mutate:  func(c *config.Config) { c.Discovery = nil },
			wantErr: config.ErrMissingSection,
		},
		{
			name:    "non-positive lookback",
			mutate:  func(c *config.Config) { c.Discovery.LookbackHours = 0 },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "non-positive request timeout",
			mutate:  func(c *config.Config) { c.Discovery.RequestTimeout = 0 },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "missing browser section",
			mutate:  func(c *config.Config) { c.Browser = nil },
			wantErr: config.ErrMissingSection,
		},
		{
			name:    "enabled browser without timeout",
			mutate:  func(c *config.Config) { c.Browser.Timeout = 0 },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "missing server address",
			mutate:  func(c *config.Config) { c.Server.Address = "" },
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "enabled schedule without spec",
			mutate: func(c *config.Config) {
				c.Schedule = &config.ScheduleConfig{Enabled: true}
			},
			wantErr: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDisabledBrowserSkipsTimeoutCheck(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Browser = &config.BrowserConfig{Enabled: false}

	assert.NoError(t, cfg.Validate())
}
