// Package config provides configuration management for the blogwatch application.
package config

import "time"

// ValidEnvironments defines the valid environment types
var ValidEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
	"test":        true,
}

// Default configuration values
const (
	// DefaultAppName is the default application name
	DefaultAppName = "blogwatch"

	// DefaultAppVersion is the default application version
	DefaultAppVersion = "1.0.0"

	// DefaultAppEnv is the default application environment
	DefaultAppEnv = "production"

	// DefaultLookbackHours is the default lookback window for a discovery run
	DefaultLookbackHours = 24

	// DefaultRequestTimeout bounds plain HTTP fetches
	DefaultRequestTimeout = 10 * time.Second

	// DefaultUserAgent identifies plain HTTP fetches
	DefaultUserAgent = "blogwatch/1.0 (+https://github.com/jonesrussell/blogwatch)"

	// DefaultBrowserTimeout bounds a full headless page render
	DefaultBrowserTimeout = 30 * time.Second

	// DefaultBrowserUserAgent is a realistic client identification string
	// for rendered-page loads
	DefaultBrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultTelegramBaseURL is the Telegram Bot API endpoint
	DefaultTelegramBaseURL = "https://api.telegram.org"

	// DefaultTelegramParseMode formats notification messages
	DefaultTelegramParseMode = "Markdown"

	// DefaultTelegramTimeout bounds notification API calls
	DefaultTelegramTimeout = 10 * time.Second

	// DefaultServerAddress is the default HTTP trigger server address
	DefaultServerAddress = ":8080"

	// DefaultReadTimeout is the default HTTP server read timeout
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default HTTP server write timeout
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the default HTTP server idle timeout
	DefaultIdleTimeout = 60 * time.Second

	// DefaultScheduleSpec runs scheduled discovery at the top of every hour
	DefaultScheduleSpec = "@hourly"

	// DefaultShutdownTimeout bounds graceful server shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

// Environment types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)
