package strategy

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/fetch"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/resolve"
	"github.com/jonesrussell/blogwatch/internal/sources"
	"github.com/jonesrussell/blogwatch/internal/urlutil"
)

// monthDayYearPattern matches "Nov 24, 2025" / "November 24 2025" style
// tokens in listing link text.
var monthDayYearPattern = regexp.MustCompile(
	`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}`)

// publishedLinePattern matches explicit "Published <date>" lines on detail
// pages.
var publishedLinePattern = regexp.MustCompile(
	`(?i)Published\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})`)

// SemanticStrategy scrapes listing pages that ship article links in static
// semantic HTML. It leans on stable structure (article containers, href
// patterns, headings, meta tags) instead of CSS class names, which change
// too often to depend on. A candidate still missing its title or date after
// the listing scan gets one detail-page fetch; candidates incomplete even
// then are emitted anyway and dropped centrally by the engine.
type SemanticStrategy struct {
	client *fetch.Client
	titles *resolve.TitleResolver
	dates  *resolve.DateResolver
	cfg    config.DiscoveryConfig
	log    logger.Interface
}

// NewSemanticStrategy creates a SemanticStrategy. The discovery config
// supplies the request timeout and User-Agent for the listing collector.
func NewSemanticStrategy(
	client *fetch.Client,
	titles *resolve.TitleResolver,
	dates *resolve.DateResolver,
	cfg *config.DiscoveryConfig,
	log logger.Interface,
) *SemanticStrategy {
	return &SemanticStrategy{
		client: client,
		titles: titles,
		dates:  dates,
		cfg:    *cfg,
		log:    log,
	}
}

// Kind implements Strategy.
func (s *SemanticStrategy) Kind() sources.Kind { return sources.KindSemantic }

// Fetch scrapes the source listing page. Links are deduplicated by
// canonical URL in page order, keeping the first occurrence.
func (s *SemanticStrategy) Fetch(ctx context.Context, source sources.Config) ([]domain.Candidate, error) {
	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.MaxDepth(1),
		colly.IgnoreRobotsTxt(),
		colly.UserAgent(s.cfg.UserAgent),
	)
	collector.SetRequestTimeout(s.cfg.RequestTimeout)

	selector := source.Selectors.Link
	if source.Selectors.Container != "" {
		selector = source.Selectors.Container + " " + selector
	}

	seen := make(map[string]bool)

	var candidates []domain.Candidate

	collector.OnHTML(selector, func(e *colly.HTMLElement) {
		candidate, ok := s.linkCandidate(source, e)
		if !ok {
			return
		}
		if seen[candidate.URL] {
			return
		}
		seen[candidate.URL] = true

		candidates = append(candidates, candidate)
	})

	if visitErr := collector.Visit(source.URL); visitErr != nil {
		return nil, fmt.Errorf("semantic %s: %w", source.Name, visitErr)
	}

	s.log.Debug("Listing scanned", "source", source.Name, "links", len(candidates))

	for i := range candidates {
		if !candidates[i].Complete() {
			s.completeFromDetailPage(ctx, &candidates[i])
		}
	}

	return candidates, nil
}

// linkCandidate builds a candidate from one listing anchor: absolute
// canonical URL, title from the heading inside the link, and date from a
// month-day-year token in the link text. The listing's own path is skipped.
func (s *SemanticStrategy) linkCandidate(source sources.Config, e *colly.HTMLElement) (domain.Candidate, bool) {
	href := strings.TrimSpace(e.Attr("href"))
	if href == "" {
		return domain.Candidate{}, false
	}

	abs, err := urlutil.Absolute(source.BaseURL, href)
	if err != nil {
		s.log.Debug("Skipping unresolvable link", "source", source.Name, "href", href)
		return domain.Candidate{}, false
	}

	if urlutil.Path(abs) == source.Selectors.ListingPath {
		return domain.Candidate{}, false
	}

	candidate := domain.Candidate{
		Source: source.Name,
		URL:    urlutil.Canonicalize(abs),
	}

	heading := source.Selectors.Heading
	if heading == "" {
		heading = "h1, h2, h3, h4"
	}
	candidate.Title = strings.TrimSpace(e.DOM.Find(heading).First().Text())

	if token := monthDayYearPattern.FindString(e.Text); token != "" {
		candidate.DateText = token
		if ts, resolveErr := s.dates.Resolve(token); resolveErr == nil {
			candidate.PublishedAt = ts
		}
	}

	return candidate, true
}

// completeFromDetailPage fills a candidate's missing title or date from its
// article page with a single fetch. A failed fetch leaves the candidate as
// it was; only this candidate is lost when it stays incomplete.
func (s *SemanticStrategy) completeFromDetailPage(ctx context.Context, candidate *domain.Candidate) {
	s.log.Debug("Fetching detail page", "url", candidate.URL)

	doc, err := s.client.Document(ctx, candidate.URL)
	if err != nil {
		s.log.Debug("Detail page fetch failed", "url", candidate.URL, "error", err.Error())
		return
	}

	if candidate.Title == "" {
		title, titleErr := s.titles.Resolve(doc)
		if titleErr != nil {
			s.log.Debug("Detail page has no usable title", "url", candidate.URL)
		} else {
			candidate.Title = title
		}
	}

	if candidate.PublishedAt.IsZero() {
		s.detailDate(doc, candidate)
	}
}

// detailDate probes a detail page for a publication date: the
// article:published_time meta tag first, then a "Published <date>" line in
// the page text.
func (s *SemanticStrategy) detailDate(doc *goquery.Document, candidate *domain.Candidate) {
	if content, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok {
		token := strings.TrimSpace(content)
		if ts, err := s.dates.Resolve(token); err == nil {
			candidate.DateText = token
			candidate.PublishedAt = ts

			return
		}
	}

	match := publishedLinePattern.FindStringSubmatch(doc.Text())
	if len(match) < 2 {
		return
	}

	if ts, err := s.dates.Resolve(match[1]); err == nil {
		candidate.DateText = match[1]
		candidate.PublishedAt = ts
	}
}
