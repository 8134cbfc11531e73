// Package urlutil provides URL canonicalization for article deduplication.
// Article URLs are canonicalized before comparison so that the same article
// expressed with tracking parameters or a trailing slash produces the same
// dedup key.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	errEmptyBase = errors.New("absolute url: empty base")
	errEmptyHref = errors.New("absolute url: empty href")
)

// Canonicalize strips the query string, fragment, and trailing slashes from
// a URL. The result is the deduplication key and the form articles are
// emitted with. An empty input yields an empty string.
func Canonicalize(raw string) string {
	if raw == "" {
		return ""
	}

	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}

	return strings.TrimRight(raw, "/")
}

// Absolute resolves href against base, returning an absolute URL. Relative
// hrefs (including root-relative ones like "/engineering/foo") are resolved
// against the base; absolute hrefs are returned as-is.
func Absolute(base, href string) (string, error) {
	if href == "" {
		return "", errEmptyHref
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("absolute url: parse href: %w", err)
	}
	if parsed.IsAbs() {
		return href, nil
	}

	if base == "" {
		return "", errEmptyBase
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("absolute url: parse base: %w", err)
	}

	return baseURL.ResolveReference(parsed).String(), nil
}

// Path returns the path component of a URL with any trailing slash
// trimmed, lowercase untouched. Used for listing self-link checks.
func Path(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.TrimRight(parsed.Path, "/")
}
