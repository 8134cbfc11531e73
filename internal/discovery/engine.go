// Package discovery implements the article-discovery engine: it walks the
// configured sources in order, dispatches each one to its strategy, and
// turns the surviving candidates into Articles. Completeness checks, the
// cutoff filter, and per-source deduplication all live here so each happens
// exactly once per run.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/sources"
	"github.com/jonesrussell/blogwatch/internal/strategy"
)

// Engine orchestrates a discovery run across all configured sources.
// Sources are processed sequentially; a failing source contributes zero
// articles and never stops the sources after it.
type Engine struct {
	strategies map[sources.Kind]strategy.Strategy
	sources    []sources.Config
	log        logger.Interface
	now        func() time.Time
}

// New creates an Engine dispatching to the given strategies.
func New(strategies []strategy.Strategy, srcs []sources.Config, log logger.Interface) *Engine {
	byKind := make(map[sources.Kind]strategy.Strategy, len(strategies))
	for _, s := range strategies {
		byKind[s.Kind()] = s
	}

	return &Engine{
		strategies: byKind,
		sources:    srcs,
		log:        log,
		now:        time.Now,
	}
}

// WithClock pins the engine clock. Used by tests to fix the cutoff.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run executes one discovery pass and returns every article published on
// or after the cutoff date, in source order then discovery order. The
// error return is reserved for context cancellation; per-source and
// per-candidate failures are logged and contained, so the worst normal
// outcome is an empty slice.
func (e *Engine) Run(ctx context.Context, lookback time.Duration) ([]domain.Article, error) {
	cutoff := CutoffDate(e.now().UTC(), lookback)

	e.log.Info("Starting discovery run",
		"sources", len(e.sources),
		"lookback", lookback.String(),
		"cutoff", cutoff.Format("2006-01-02"))

	var articles []domain.Article

	for i := range e.sources {
		if err := ctx.Err(); err != nil {
			return articles, fmt.Errorf("discovery run: %w", err)
		}

		source := e.sources[i]

		found := e.runSource(ctx, source, cutoff)
		e.log.Info("Source processed", "source", source.Name, "articles", len(found))

		articles = append(articles, found...)
	}

	e.log.Info("Discovery run finished", "articles", len(articles))

	return articles, nil
}

// runSource fetches one source's candidates and reduces them to articles:
// incomplete candidates are dropped, stale ones filtered against the
// cutoff, and duplicate canonical URLs collapsed to their first occurrence.
func (e *Engine) runSource(ctx context.Context, source sources.Config, cutoff time.Time) []domain.Article {
	strat, ok := e.strategies[source.Kind]
	if !ok {
		e.log.Warn("No strategy for source kind, skipping source",
			"source", source.Name,
			"kind", string(source.Kind))
		return nil
	}

	candidates, err := strat.Fetch(ctx, source)
	if err != nil {
		if errors.Is(err, strategy.ErrRenderingUnavailable) {
			e.log.Warn("Rendering unavailable, skipping source", "source", source.Name)
		} else {
			e.log.Error("Source fetch failed", "source", source.Name, "error", err.Error())
		}

		return nil
	}

	seen := make(map[string]bool, len(candidates))

	var articles []domain.Article

	for i := range candidates {
		candidate := &candidates[i]

		if !candidate.Complete() {
			e.log.Debug("Dropping incomplete candidate",
				"source", source.Name,
				"url", candidate.URL,
				"title", candidate.Title)
			continue
		}

		if calendarDate(candidate.PublishedAt).Before(cutoff) {
			e.log.Debug("Dropping stale candidate",
				"source", source.Name,
				"url", candidate.URL,
				"published_at", candidate.PublishedAt.Format(time.RFC3339))
			continue
		}

		if seen[candidate.URL] {
			e.log.Debug("Dropping duplicate candidate", "source", source.Name, "url", candidate.URL)
			continue
		}
		seen[candidate.URL] = true

		articles = append(articles, domain.NewArticle(
			candidate.Source,
			candidate.Title,
			candidate.URL,
			candidate.PublishedAt,
		))
	}

	return articles
}

// CutoffDate derives the earliest calendar date still considered new:
// now minus the lookback window, truncated to midnight UTC. Comparisons
// against it are date-only on purpose; a source's own publish dates often
// carry no time of day.
func CutoffDate(now time.Time, lookback time.Duration) time.Time {
	return calendarDate(now.UTC().Add(-lookback))
}

// calendarDate truncates a timestamp to midnight UTC.
func calendarDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
