// Package domain provides domain models used across the application.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// dateOnlyFormat is the calendar-date layout used for the normalized
// publish date (e.g. "2025-01-15").
const dateOnlyFormat = "2006-01-02"

// Article is the canonical output unit of a discovery run. Every emitted
// Article carries a non-empty title, a canonical URL, and a resolved
// publish date; records missing any of these are dropped upstream, never
// emitted with placeholders.
type Article struct {
	// ID uniquely identifies the article within a run
	ID string `json:"id"`
	// Source is the configured name of the blog the article came from
	Source string `json:"source"`
	// Title of the article
	Title string `json:"title"`
	// URL is the canonical article URL (query and trailing slash stripped)
	URL string `json:"url"`
	// Date is the normalized publish date at calendar-date granularity, UTC
	Date string `json:"date"`
	// PublishedAt preserves the full resolved timestamp
	PublishedAt time.Time `json:"published_at"`
}

// NewArticle builds an Article from resolved candidate data. The publish
// timestamp is anchored to UTC and the calendar date derived from it.
func NewArticle(source, title, url string, publishedAt time.Time) Article {
	utc := publishedAt.UTC()
	return Article{
		ID:          uuid.NewString(),
		Source:      source,
		Title:       strings.TrimSpace(title),
		URL:         url,
		Date:        utc.Format(dateOnlyFormat),
		PublishedAt: utc,
	}
}

// Validate reports whether the article satisfies the emission invariant.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}
	if a.URL == "" {
		return ErrMissingURL
	}
	if a.PublishedAt.IsZero() {
		return ErrMissingDate
	}
	return nil
}
