// Package cmd implements the command-line interface for blogwatch.
// It provides the root command and subcommands for running article
// discovery, serving the HTTP trigger, and managing notifications.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/blogwatch/cmd/chatid"
	"github.com/jonesrussell/blogwatch/cmd/discover"
	cmdnotify "github.com/jonesrussell/blogwatch/cmd/notify"
	"github.com/jonesrussell/blogwatch/cmd/serve"
	cmdsources "github.com/jonesrussell/blogwatch/cmd/sources"
	"github.com/jonesrussell/blogwatch/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the blogwatch CLI.
	rootCmd = &cobra.Command{
		Use:   "blogwatch",
		Short: "An engineering-blog article watcher",
		Long: `blogwatch discovers newly published articles on a fixed set of
engineering blogs and reports the ones inside a configurable lookback
window, deduplicated and normalized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get the config path before initializing Viper
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().String("sources", "",
		"YAML file overriding the built-in source list")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("blogwatch version %s\n", config.DefaultAppVersion)
		},
	})

	rootCmd.AddCommand(discover.Command())
	rootCmd.AddCommand(serve.Command())
	rootCmd.AddCommand(cmdsources.Command())
	rootCmd.AddCommand(cmdnotify.Command())
	rootCmd.AddCommand(chatid.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	// Enable automatic environment variable reading before defaults so
	// environment values take precedence over them.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; defaults and environment variables cover
	// a file-less run.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := bindCommandLineFlags(); err != nil {
		return err
	}

	if err := bindEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// setDefaults seeds Viper with the built-in configuration values.
func setDefaults() {
	viper.SetDefault("app.name", config.DefaultAppName)
	viper.SetDefault("app.version", config.DefaultAppVersion)
	viper.SetDefault("app.environment", config.DefaultAppEnv)
	viper.SetDefault("app.debug", false)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")

	viper.SetDefault("discovery.lookback_hours", config.DefaultLookbackHours)
	viper.SetDefault("discovery.request_timeout", config.DefaultRequestTimeout)
	viper.SetDefault("discovery.user_agent", config.DefaultUserAgent)
	viper.SetDefault("discovery.source_file", "")

	viper.SetDefault("browser.enabled", true)
	viper.SetDefault("browser.timeout", config.DefaultBrowserTimeout)
	viper.SetDefault("browser.user_agent", config.DefaultBrowserUserAgent)

	viper.SetDefault("telegram.base_url", config.DefaultTelegramBaseURL)
	viper.SetDefault("telegram.parse_mode", config.DefaultTelegramParseMode)
	viper.SetDefault("telegram.timeout", config.DefaultTelegramTimeout)

	viper.SetDefault("server.address", config.DefaultServerAddress)
	viper.SetDefault("server.read_timeout", config.DefaultReadTimeout)
	viper.SetDefault("server.write_timeout", config.DefaultWriteTimeout)
	viper.SetDefault("server.idle_timeout", config.DefaultIdleTimeout)

	viper.SetDefault("schedule.enabled", false)
	viper.SetDefault("schedule.spec", config.DefaultScheduleSpec)
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := viper.BindPFlag("discovery.source_file", rootCmd.PersistentFlags().Lookup("sources")); err != nil {
		return fmt.Errorf("failed to bind sources flag: %w", err)
	}
	return nil
}

// bindEnvVars maps well-known environment variables to config keys.
func bindEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN"); err != nil {
		return fmt.Errorf("failed to bind TELEGRAM_BOT_TOKEN: %w", err)
	}
	if err := viper.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID"); err != nil {
		return fmt.Errorf("failed to bind TELEGRAM_CHAT_ID: %w", err)
	}
	return nil
}

// setupDevelopmentLogging widens logging when debug mode is on.
func setupDevelopmentLogging() {
	if Debug || viper.GetBool("app.debug") {
		viper.Set("logger.level", "debug")
		viper.Set("logger.development", true)
		viper.Set("logger.enable_color", true)
	}
}
