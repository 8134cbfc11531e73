// Package strategy implements the per-source discovery strategies: feed
// parsing, semantic HTML scraping, and headless-browser rendering. A
// strategy resolves as much of each candidate as it can and emits what it
// finds; cutoff filtering and final completeness checks happen once,
// centrally, in the discovery engine.
package strategy

import (
	"context"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/sources"
)

// Strategy fetches article candidates from one source. Per-item failures
// are logged and skipped inside Fetch; an error return means the source
// yielded nothing this run.
type Strategy interface {
	// Kind reports which source kind the strategy serves.
	Kind() sources.Kind
	// Fetch returns the candidates discovered on source, in page order.
	Fetch(ctx context.Context, source sources.Config) ([]domain.Candidate, error)
}

var (
	_ Strategy = (*FeedStrategy)(nil)
	_ Strategy = (*SemanticStrategy)(nil)
	_ Strategy = (*RenderedStrategy)(nil)
)
