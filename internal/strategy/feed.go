package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/fetch"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/resolve"
	"github.com/jonesrussell/blogwatch/internal/sitemap"
	"github.com/jonesrussell/blogwatch/internal/sources"
	"github.com/jonesrussell/blogwatch/internal/urlutil"
)

// FeedStrategy discovers articles through a source's RSS or Atom feed.
// When the feed omits entry timestamps, the source's sitemap supplies
// lastmod values as a fallback.
type FeedStrategy struct {
	client   *fetch.Client
	parser   *gofeed.Parser
	sitemaps *sitemap.Builder
	dates    *resolve.DateResolver
	log      logger.Interface
}

// NewFeedStrategy creates a FeedStrategy.
func NewFeedStrategy(
	client *fetch.Client,
	sitemaps *sitemap.Builder,
	dates *resolve.DateResolver,
	log logger.Interface,
) *FeedStrategy {
	return &FeedStrategy{
		client:   client,
		parser:   gofeed.NewParser(),
		sitemaps: sitemaps,
		dates:    dates,
		log:      log,
	}
}

// Kind implements Strategy.
func (s *FeedStrategy) Kind() sources.Kind { return sources.KindFeed }

// Fetch downloads and parses the source feed. The sitemap index is built
// once per call when the source configures one. Entries without a link or
// a resolvable date are skipped.
func (s *FeedStrategy) Fetch(ctx context.Context, source sources.Config) ([]domain.Candidate, error) {
	body, err := s.client.Get(ctx, source.URL)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", source.Name, err)
	}

	parsed, parseErr := s.parser.ParseString(body)
	if parseErr != nil {
		return nil, fmt.Errorf("feed %s: parse: %w", source.Name, parseErr)
	}

	s.log.Debug("Feed parsed", "source", source.Name, "entries", len(parsed.Items))

	var index sitemap.Index
	if source.SitemapURL != "" {
		index = s.sitemaps.Build(ctx, source.SitemapURL)
	}

	candidates := make([]domain.Candidate, 0, len(parsed.Items))

	for _, item := range parsed.Items {
		if item.Link == "" {
			s.log.Debug("Skipping feed entry without link",
				"source", source.Name,
				"title", item.Title)
			continue
		}

		canonical := urlutil.Canonicalize(strings.TrimSpace(item.Link))

		publishedAt, ok := s.entryDate(item, index, canonical)
		if !ok {
			s.log.Debug("Skipping feed entry without resolvable date",
				"source", source.Name,
				"url", canonical)
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Source:      source.Name,
			Title:       strings.TrimSpace(item.Title),
			URL:         canonical,
			PublishedAt: publishedAt,
		})
	}

	return candidates, nil
}

// entryDate resolves an entry timestamp: feed-native published time, then
// updated time, then the sitemap lastmod for the entry URL.
func (s *FeedStrategy) entryDate(item *gofeed.Item, index sitemap.Index, canonical string) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC(), true
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC(), true
	}

	lastMod, ok := index.LastMod(canonical)
	if !ok {
		return time.Time{}, false
	}

	resolved, err := s.dates.Resolve(lastMod)
	if err != nil {
		s.log.Debug("Sitemap lastmod unparseable", "url", canonical, "lastmod", lastMod)
		return time.Time{}, false
	}

	return resolved, true
}
