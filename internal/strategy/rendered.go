package strategy

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/render"
	"github.com/jonesrussell/blogwatch/internal/resolve"
	"github.com/jonesrussell/blogwatch/internal/sources"
	"github.com/jonesrussell/blogwatch/internal/urlutil"
)

// dayMonthRegionPattern matches "6 January / Global" style tokens in card
// text. The region suffix and the missing year are handled by the
// DateResolver.
var dayMonthRegionPattern = regexp.MustCompile(
	`(?i)\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s*/\s*\w+`)

// RenderedStrategy discovers articles on listings that only exist after
// client-side JavaScript runs. When rendering is unavailable it returns
// ErrRenderingUnavailable and the engine skips the source.
type RenderedStrategy struct {
	renderer render.Renderer
	dates    *resolve.DateResolver
	log      logger.Interface
}

// NewRenderedStrategy creates a RenderedStrategy.
func NewRenderedStrategy(renderer render.Renderer, dates *resolve.DateResolver, log logger.Interface) *RenderedStrategy {
	return &RenderedStrategy{
		renderer: renderer,
		dates:    dates,
		log:      log,
	}
}

// Kind implements Strategy.
func (s *RenderedStrategy) Kind() sources.Kind { return sources.KindRendered }

// Fetch renders the listing and walks its article cards. Cards without a
// heading are navigation links and are skipped; cards whose date token
// cannot be resolved are emitted incomplete and dropped centrally.
func (s *RenderedStrategy) Fetch(ctx context.Context, source sources.Config) ([]domain.Candidate, error) {
	if !s.renderer.Available() {
		return nil, fmt.Errorf("%s: %w", source.Name, ErrRenderingUnavailable)
	}

	waitFor := source.Selectors.WaitFor
	if waitFor == "" {
		waitFor = source.Selectors.Link
	}

	html, err := s.renderer.Render(ctx, source.URL, waitFor)
	if err != nil {
		return nil, fmt.Errorf("rendered %s: %w", source.Name, err)
	}

	doc, parseErr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if parseErr != nil {
		return nil, fmt.Errorf("rendered %s: parse: %w", source.Name, parseErr)
	}

	seen := make(map[string]bool)

	var candidates []domain.Candidate

	doc.Find(source.Selectors.Link).Each(func(_ int, card *goquery.Selection) {
		candidate, ok := s.cardCandidate(source, card, seen)
		if !ok {
			return
		}

		candidates = append(candidates, candidate)
	})

	s.log.Debug("Rendered listing scanned", "source", source.Name, "cards", len(candidates))

	return candidates, nil
}

// cardCandidate builds a candidate from one rendered article card. The seen
// set is marked as soon as the card passes the URL checks, so a duplicate
// card never gets a second look.
func (s *RenderedStrategy) cardCandidate(
	source sources.Config,
	card *goquery.Selection,
	seen map[string]bool,
) (domain.Candidate, bool) {
	href, ok := card.Attr("href")
	href = strings.TrimSpace(href)
	if !ok || href == "" {
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

	canonical := urlutil.Canonicalize(abs)
	if seen[canonical] {
		return domain.Candidate{}, false
	}
	seen[canonical] = true

	title := strings.TrimSpace(card.Find(source.Selectors.Heading).First().Text())
	if title == "" {
		return domain.Candidate{}, false
	}

	candidate := domain.Candidate{
		Source: source.Name,
		Title:  title,
		URL:    canonical,
	}

	if token := dayMonthRegionPattern.FindString(card.Text()); token != "" {
		candidate.DateText = token
		if ts, resolveErr := s.dates.Resolve(token); resolveErr == nil {
			candidate.PublishedAt = ts
		} else {
			s.log.Debug("Card date unparseable",
				"source", source.Name,
				"title", title,
				"date_text", token)
		}
	}

	return candidate, true
}
