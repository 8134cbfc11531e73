// Package resolve turns raw page fragments (date text, fetched documents)
// into normalized article fields.
package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first match wins. Full month names
// before abbreviated ones, month-first before day-first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var (
	yearPattern = regexp.MustCompile(`\d{4}`)
	septPattern = regexp.MustCompile(`\bSept\b`)
)

// DateResolver parses heterogeneous date text (feed timestamps, sitemap
// lastmod values, free text scraped from listing pages) into UTC-anchored
// timestamps. Text without a year is assumed to be from the current year.
type DateResolver struct {
	now func() time.Time
}

// NewDateResolver returns a resolver using the wall clock for year injection.
func NewDateResolver() *DateResolver {
	return &DateResolver{now: time.Now}
}

// NewDateResolverWithClock pins the clock used for year injection.
func NewDateResolverWithClock(now func() time.Time) *DateResolver {
	return &DateResolver{now: now}
}

// Resolve parses dateText into a UTC timestamp. Layouts without a time
// component yield midnight UTC. Text no layout matches yields
// ErrUnparseableDate; callers drop the record rather than guess.
func (r *DateResolver) Resolve(dateText string) (time.Time, error) {
	text := r.normalize(dateText)
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, dateText)
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, text)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, dateText)
}

// normalize prepares scraped date text for layout matching: region suffixes
// like "6 January / Global" lose everything from the slash on, "Sept" becomes
// the layout-recognized "Sep", and text without a 4-digit year gets the
// current year appended.
func (r *DateResolver) normalize(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '/'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if text == "" {
		return ""
	}

	text = septPattern.ReplaceAllString(text, "Sep")
	if !yearPattern.MatchString(text) {
		text += " " + strconv.Itoa(r.now().UTC().Year())
	}

	return text
}
