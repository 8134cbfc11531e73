package domain

import (
	"strings"
	"time"
)

// Candidate is a raw, not-yet-validated extraction result produced by a
// source strategy. Title or PublishedAt may be missing; the discovery
// engine drops incomplete candidates after the strategy's fallback chain
// has had its chance.
type Candidate struct {
	// Source is the configured name of the blog the candidate came from
	Source string
	// Title as extracted, possibly empty
	Title string
	// URL is the canonical candidate URL (query and trailing slash stripped)
	URL string
	// DateText is the raw date token the strategy matched, if any
	DateText string
	// PublishedAt is the resolved publish timestamp; zero when unresolved
	PublishedAt time.Time
}

// Complete reports whether the candidate carries everything an Article
// requires: a title, a URL, and a resolved date.
func (c *Candidate) Complete() bool {
	return strings.TrimSpace(c.Title) != "" && c.URL != "" && !c.PublishedAt.IsZero()
}
