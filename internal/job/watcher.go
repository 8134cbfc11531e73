// Package job runs the discovery engine on a cron schedule. One Watcher
// wraps one engine; each firing is a full discover-then-notify pass.
package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

// Runner executes one discovery pass. Satisfied by discovery.Engine.
type Runner interface {
	Run(ctx context.Context, lookback time.Duration) ([]domain.Article, error)
}

// Sender delivers discovery results. Satisfied by notify.Notifier.
type Sender interface {
	Notify(ctx context.Context, articles []domain.Article) error
}

// Watcher schedules recurring discovery runs. The engine is sequential,
// so a firing runs inline; a schedule that outpaces a full pass skips
// the overlapping firing instead of stacking runs.
type Watcher struct {
	cron     *cron.Cron
	runner   Runner
	sender   Sender
	lookback time.Duration
	log      logger.Interface
}

// NewWatcher creates a Watcher running discovery with the given lookback
// on each firing.
func NewWatcher(runner Runner, sender Sender, lookback time.Duration, log logger.Interface) *Watcher {
	return &Watcher{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		runner:   runner,
		sender:   sender,
		lookback: lookback,
		log:      log,
	}
}

// Start validates spec, registers the job, and starts the cron scheduler.
// Standard 5-field cron expressions and descriptors like "@hourly" are
// accepted.
func (w *Watcher) Start(spec string) error {
	if _, err := w.cron.AddFunc(spec, w.runOnce); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	w.cron.Start()
	w.log.Info("Scheduled discovery started", "spec", spec, "lookback", w.lookback.String())

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (w *Watcher) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.log.Info("Scheduled discovery stopped")
}

// RunNow triggers one discover-then-notify pass outside the schedule.
func (w *Watcher) RunNow() {
	w.runOnce()
}

// runOnce is one cron firing: discover, then notify when anything was
// found. Failures are logged; the next firing starts clean.
func (w *Watcher) runOnce() {
	ctx := context.Background()

	w.log.Info("Scheduled discovery run starting")

	articles, err := w.runner.Run(ctx, w.lookback)
	if err != nil {
		w.log.Error("Scheduled discovery run failed", "error", err.Error())
		return
	}

	w.log.Info("Scheduled discovery run finished", "articles", len(articles))

	if len(articles) == 0 {
		return
	}

	if notifyErr := w.sender.Notify(ctx, articles); notifyErr != nil {
		if errors.Is(notifyErr, notify.ErrMissingCredentials) {
			w.log.Warn("Notification skipped, credentials not configured")
		} else {
			w.log.Error("Notification failed", "error", notifyErr.Error())
		}
	}
}
