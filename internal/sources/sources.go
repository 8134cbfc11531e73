// Package sources defines the monitored blog descriptors: which sites to
// watch, which strategy fetches each one, and the selectors the strategy
// needs. The built-in list covers the three monitored engineering blogs;
// an optional YAML file can replace it.
package sources

import (
	"fmt"
	"net/url"
)

// Kind selects the discovery strategy for a source.
type Kind string

const (
	// KindFeed sources expose an RSS or Atom feed.
	KindFeed Kind = "feed"
	// KindSemantic sources render article lists in static semantic HTML.
	KindSemantic Kind = "semantic"
	// KindRendered sources need a headless browser before links exist.
	KindRendered Kind = "rendered"
)

// Valid reports whether k names a known strategy.
func (k Kind) Valid() bool {
	switch k {
	case KindFeed, KindSemantic, KindRendered:
		return true
	default:
		return false
	}
}

// Selectors carries the per-source extraction hooks used by the HTML
// strategies. Feed sources leave it empty.
type Selectors struct {
	// Container scopes the listing scan (semantic sources).
	Container string `mapstructure:"container" yaml:"container"`
	// Link matches article anchors on the listing page.
	Link string `mapstructure:"link" yaml:"link"`
	// Heading matches the title element inside a link or container.
	Heading string `mapstructure:"heading" yaml:"heading"`
	// WaitFor marks the listing as loaded on rendered pages. Falls back
	// to Link when empty.
	WaitFor string `mapstructure:"wait_for" yaml:"wait_for"`
	// ListingPath is the listing page's own path, excluded from results.
	ListingPath string `mapstructure:"listing_path" yaml:"listing_path"`
}

// Config describes one monitored source. Configs are immutable after load.
type Config struct {
	Name       string    `mapstructure:"name" yaml:"name"`
	Kind       Kind      `mapstructure:"kind" yaml:"kind"`
	URL        string    `mapstructure:"url" yaml:"url"`
	BaseURL    string    `mapstructure:"base_url" yaml:"base_url"`
	SitemapURL string    `mapstructure:"sitemap_url" yaml:"sitemap_url"`
	Selectors  Selectors `mapstructure:"selectors" yaml:"selectors"`
}

// Validate checks that the config is complete enough for its kind.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, c.Kind)
	}

	if c.URL == "" {
		return fmt.Errorf("%w: url", ErrMissingField)
	}
	if err := validateHTTPURL(c.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}

	if c.Kind != KindFeed && c.Selectors.Link == "" {
		return fmt.Errorf("%w: selectors.link", ErrMissingField)
	}

	return nil
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrNotHTTP
	}

	return nil
}

// Defaults returns the built-in source list. The slice is freshly
// allocated on each call so callers cannot mutate shared state.
func Defaults() []Config {
	return []Config{
		{
			Name:    "Anthropic Engineering",
			Kind:    KindSemantic,
			URL:     "https://www.anthropic.com/engineering",
			BaseURL: "https://www.anthropic.com",
			Selectors: Selectors{
				Container:   "article",
				Link:        `a[href*="/engineering/"]`,
				Heading:     "h1, h2, h3, h4",
				ListingPath: "/engineering",
			},
		},
		{
			Name:       "Google Developers (AI)",
			Kind:       KindFeed,
			URL:        "https://developers.googleblog.com/feeds/posts/default?alt=atom&category=AI",
			BaseURL:    "https://developers.googleblog.com",
			SitemapURL: "https://developers.googleblog.com/sitemap.xml",
		},
		{
			Name:    "Uber Engineering",
			Kind:    KindRendered,
			URL:     "https://www.uber.com/en-IN/blog/engineering/",
			BaseURL: "https://www.uber.com",
			Selectors: Selectors{
				Link:        `a[href*="/blog/"]`,
				Heading:     "h2, h3",
				WaitFor:     `a[href*="/blog/"]`,
				ListingPath: "/en-IN/blog/engineering",
			},
		},
	}
}
