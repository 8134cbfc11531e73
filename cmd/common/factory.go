package common

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/discovery"
	"github.com/jonesrussell/blogwatch/internal/fetch"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/render"
	"github.com/jonesrussell/blogwatch/internal/resolve"
	"github.com/jonesrussell/blogwatch/internal/sitemap"
	"github.com/jonesrussell/blogwatch/internal/sources"
	"github.com/jonesrussell/blogwatch/internal/strategy"
)

// NewCommandDeps creates CommandDeps by loading config and creating logger.
// This consolidates the common initialization code from Execute().
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	logLevel := viper.GetString("logger.level")
	if logLevel == "" {
		logLevel = "info"
	}
	logLevel = strings.ToLower(logLevel)

	logCfg := &logger.Config{
		Level:       logger.Level(logLevel),
		Development: viper.GetBool("logger.development"),
		Encoding:    viper.GetString("logger.encoding"),
		OutputPaths: viper.GetStringSlice("logger.output_paths"),
		EnableColor: viper.GetBool("logger.enable_color"),
	}

	log, err := logger.New(logCfg)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// NewEngine wires a discovery engine from configuration: one HTTP client
// shared by every strategy, the resolvers, the sitemap builder, and the
// three strategies dispatching on source kind.
func NewEngine(deps CommandDeps) (*discovery.Engine, error) {
	discoveryCfg := deps.Config.GetDiscoveryConfig()

	srcs, err := sources.Effective(discoveryCfg.SourceFile, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	client := fetch.NewClient(discoveryCfg.RequestTimeout, discoveryCfg.UserAgent)
	dates := resolve.NewDateResolver()
	titles := resolve.NewTitleResolver()
	sitemaps := sitemap.NewBuilder(client, deps.Logger)
	renderer := render.NewChromeRenderer(deps.Config.GetBrowserConfig(), deps.Logger)

	strategies := []strategy.Strategy{
		strategy.NewFeedStrategy(client, sitemaps, dates, deps.Logger),
		strategy.NewSemanticStrategy(client, titles, dates, discoveryCfg, deps.Logger),
		strategy.NewRenderedStrategy(renderer, dates, deps.Logger),
	}

	return discovery.New(strategies, srcs, deps.Logger), nil
}
