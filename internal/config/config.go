// Package config provides configuration management for the blogwatch
// application. It handles loading, validation, and access to configuration
// values from YAML files and environment variables via Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *AppConfig
	// GetDiscoveryConfig returns the discovery engine configuration.
	GetDiscoveryConfig() *DiscoveryConfig
	// GetBrowserConfig returns the headless browser configuration.
	GetBrowserConfig() *BrowserConfig
	// GetTelegramConfig returns the Telegram notifier configuration.
	GetTelegramConfig() *TelegramConfig
	// GetServerConfig returns the HTTP server configuration.
	GetServerConfig() *ServerConfig
	// GetScheduleConfig returns the scheduled-run configuration.
	GetScheduleConfig() *ScheduleConfig
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// AppConfig holds application identity settings.
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}

// DiscoveryConfig holds settings for the discovery engine.
type DiscoveryConfig struct {
	// LookbackHours is the default lookback window for a run.
	LookbackHours int `yaml:"lookback_hours"`
	// RequestTimeout bounds every plain HTTP fetch (listing, detail,
	// feed, sitemap).
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// UserAgent is sent on plain HTTP fetches.
	UserAgent string `yaml:"user_agent"`
	// SourceFile optionally points at a YAML file overriding the
	// compiled-in source list.
	SourceFile string `yaml:"source_file"`
}

// BrowserConfig holds settings for headless page rendering.
type BrowserConfig struct {
	// Enabled gates the rendered-page strategy. When false, rendered
	// sources are skipped.
	Enabled bool `yaml:"enabled"`
	// Timeout bounds a full page render including navigation.
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is the client identification sent by the browser.
	UserAgent string `yaml:"user_agent"`
}

// TelegramConfig holds settings for the Telegram notifier.
type TelegramConfig struct {
	BotToken  string        `yaml:"bot_token"`
	ChatID    string        `yaml:"chat_id"`
	BaseURL   string        `yaml:"base_url"`
	ParseMode string        `yaml:"parse_mode"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ServerConfig holds settings for the HTTP trigger server.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// ScheduleConfig holds settings for cron-scheduled runs.
type ScheduleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Spec    string `yaml:"spec"`
}

// Config represents the application configuration.
type Config struct {
	App       *AppConfig       `yaml:"app"`
	Discovery *DiscoveryConfig `yaml:"discovery"`
	Browser   *BrowserConfig   `yaml:"browser"`
	Telegram  *TelegramConfig  `yaml:"telegram"`
	Server    *ServerConfig    `yaml:"server"`
	Schedule  *ScheduleConfig  `yaml:"schedule"`
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *AppConfig { return c.App }

// GetDiscoveryConfig returns the discovery engine configuration.
func (c *Config) GetDiscoveryConfig() *DiscoveryConfig { return c.Discovery }

// GetBrowserConfig returns the headless browser configuration.
func (c *Config) GetBrowserConfig() *BrowserConfig { return c.Browser }

// GetTelegramConfig returns the Telegram notifier configuration.
func (c *Config) GetTelegramConfig() *TelegramConfig { return c.Telegram }

// GetServerConfig returns the HTTP server configuration.
func (c *Config) GetServerConfig() *ServerConfig { return c.Server }

// GetScheduleConfig returns the scheduled-run configuration.
func (c *Config) GetScheduleConfig() *ScheduleConfig { return c.Schedule }

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Discovery == nil {
		return fmt.Errorf("%w: discovery", ErrMissingSection)
	}
	if c.Discovery.LookbackHours <= 0 {
		return fmt.Errorf("%w: discovery.lookback_hours must be positive", ErrInvalidValue)
	}
	if c.Discovery.RequestTimeout <= 0 {
		return fmt.Errorf("%w: discovery.request_timeout must be positive", ErrInvalidValue)
	}
	if c.Browser == nil {
		return fmt.Errorf("%w: browser", ErrMissingSection)
	}
	if c.Browser.Enabled && c.Browser.Timeout <= 0 {
		return fmt.Errorf("%w: browser.timeout must be positive", ErrInvalidValue)
	}
	if c.Server == nil {
		return fmt.Errorf("%w: server", ErrMissingSection)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address", ErrInvalidValue)
	}
	if c.Schedule != nil && c.Schedule.Enabled && c.Schedule.Spec == "" {
		return fmt.Errorf("%w: schedule.spec required when schedule is enabled", ErrInvalidValue)
	}
	return nil
}

// LoadConfig builds the typed configuration from the current Viper state.
// Viper must already be initialized (defaults set, env bound, config file
// read) by the command layer before this is called.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		App: &AppConfig{
			Name:        viper.GetString("app.name"),
			Version:     viper.GetString("app.version"),
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Discovery: &DiscoveryConfig{
			LookbackHours:  viper.GetInt("discovery.lookback_hours"),
			RequestTimeout: viper.GetDuration("discovery.request_timeout"),
			UserAgent:      viper.GetString("discovery.user_agent"),
			SourceFile:     viper.GetString("discovery.source_file"),
		},
		Browser: &BrowserConfig{
			Enabled:   viper.GetBool("browser.enabled"),
			Timeout:   viper.GetDuration("browser.timeout"),
			UserAgent: viper.GetString("browser.user_agent"),
		},
		Telegram: &TelegramConfig{
			BotToken:  viper.GetString("telegram.bot_token"),
			ChatID:    viper.GetString("telegram.chat_id"),
			BaseURL:   viper.GetString("telegram.base_url"),
			ParseMode: viper.GetString("telegram.parse_mode"),
			Timeout:   viper.GetDuration("telegram.timeout"),
		},
		Server: &ServerConfig{
			Address:      viper.GetString("server.address"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			IdleTimeout:  viper.GetDuration("server.idle_timeout"),
		},
		Schedule: &ScheduleConfig{
			Enabled: viper.GetBool("schedule.enabled"),
			Spec:    viper.GetString("schedule.spec"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
