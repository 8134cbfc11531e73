// Package serve implements the HTTP trigger server command. It exposes the
// discovery endpoint, optionally runs the cron-scheduled watcher, and
// shuts both down gracefully on SIGINT or SIGTERM.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/blogwatch/cmd/common"
	"github.com/jonesrussell/blogwatch/internal/api"
	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/job"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

const (
	signalChannelBufferSize = 1
	errorChannelBufferSize  = 1
)

// Command returns the serve command.
func Command() *cobra.Command {
	var withSchedule bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP trigger server",
		Long: `Start the HTTP server exposing the discovery trigger endpoint.
With --schedule (or schedule.enabled in configuration), discovery also
runs on the configured cron spec.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(withSchedule)
		},
	}

	cmd.Flags().BoolVar(&withSchedule, "schedule", false,
		"also run discovery on the configured cron schedule")

	return cmd
}

func runServe(withSchedule bool) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	engine, err := common.NewEngine(deps)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	notifier := notify.NewNotifier(deps.Config.GetTelegramConfig(), deps.Logger)

	watcher, err := startWatcher(deps, engine, notifier, withSchedule)
	if err != nil {
		return err
	}

	server := api.NewServer(deps.Logger, engine, notifier, deps.Config)

	deps.Logger.Info("Starting HTTP server", "addr", server.Addr)

	errChan := make(chan error, errorChannelBufferSize)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	return runUntilInterrupt(deps, server, watcher, errChan)
}

// startWatcher starts the cron watcher when scheduling is requested by
// flag or configuration. A nil return with nil error means no schedule.
func startWatcher(
	deps common.CommandDeps,
	engine job.Runner,
	notifier job.Sender,
	withSchedule bool,
) (*job.Watcher, error) {
	scheduleCfg := deps.Config.GetScheduleConfig()
	if !withSchedule && !scheduleCfg.Enabled {
		return nil, nil
	}

	lookback := time.Duration(deps.Config.GetDiscoveryConfig().LookbackHours) * time.Hour

	watcher := job.NewWatcher(engine, notifier, lookback, deps.Logger)
	if err := watcher.Start(scheduleCfg.Spec); err != nil {
		return nil, fmt.Errorf("start schedule: %w", err)
	}

	return watcher, nil
}

// runUntilInterrupt blocks until a server error or a shutdown signal.
func runUntilInterrupt(
	deps common.CommandDeps,
	server *http.Server,
	watcher *job.Watcher,
	errChan chan error,
) error {
	sigChan := make(chan os.Signal, signalChannelBufferSize)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case serverErr := <-errChan:
		deps.Logger.Error("Server error", "error", serverErr.Error())
		return fmt.Errorf("server error: %w", serverErr)
	case sig := <-sigChan:
		return shutdown(deps, server, watcher, sig)
	}
}

// shutdown stops the watcher first, then the HTTP server, each within the
// shutdown timeout.
func shutdown(
	deps common.CommandDeps,
	server *http.Server,
	watcher *job.Watcher,
	sig os.Signal,
) error {
	deps.Logger.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()

	if watcher != nil {
		deps.Logger.Info("Stopping scheduled discovery")
		watcher.Stop()
	}

	deps.Logger.Info("Stopping HTTP server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		deps.Logger.Error("Failed to stop server", "error", err.Error())
		return fmt.Errorf("failed to stop server: %w", err)
	}

	deps.Logger.Info("Server stopped successfully")

	return nil
}
