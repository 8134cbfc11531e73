// Package sitemap builds a URL-to-lastmod lookup from a source's sitemap.
// The feed strategy uses it as the date fallback for entries that carry no
// native timestamp.
package sitemap

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/jonesrussell/blogwatch/internal/fetch"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/urlutil"
)

// xmlURLSet is the root element of a standard sitemap XML file.
type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []xmlURL `xml:"url"`
}

// xmlURL is a single <url> entry inside a <urlset>.
type xmlURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Index maps canonical URLs to their raw lastmod strings. Lastmod values
// are kept as text; date parsing stays with the caller's DateResolver.
type Index map[string]string

// LastMod looks up the lastmod string for a canonical URL.
func (idx Index) LastMod(canonicalURL string) (string, bool) {
	lastMod, ok := idx[canonicalURL]
	return lastMod, ok
}

// Builder fetches and parses sitemaps into Index values.
type Builder struct {
	client *fetch.Client
	log    logger.Interface
}

// NewBuilder creates a Builder using the given HTTP client.
func NewBuilder(client *fetch.Client, log logger.Interface) *Builder {
	return &Builder{client: client, log: log}
}

// Build fetches the sitemap at sitemapURL and returns its URL-to-lastmod
// index. Entries missing either loc or lastmod are omitted. Any fetch or
// parse failure yields an empty index; the caller then simply has no date
// fallback for that source.
func (b *Builder) Build(ctx context.Context, sitemapURL string) Index {
	body, err := b.client.Get(ctx, sitemapURL)
	if err != nil {
		b.log.Warn("Sitemap fetch failed", "url", sitemapURL, "error", err.Error())
		return Index{}
	}

	var urlset xmlURLSet
	if unmarshalErr := xml.Unmarshal([]byte(body), &urlset); unmarshalErr != nil {
		b.log.Warn("Sitemap parse failed", "url", sitemapURL, "error", unmarshalErr.Error())
		return Index{}
	}

	idx := make(Index, len(urlset.URLs))

	for i := range urlset.URLs {
		entry := &urlset.URLs[i]

		loc := strings.TrimSpace(entry.Loc)
		lastMod := strings.TrimSpace(entry.LastMod)
		if loc == "" || lastMod == "" {
			continue
		}

		idx[urlutil.Canonicalize(loc)] = lastMod
	}

	b.log.Debug("Sitemap index built", "url", sitemapURL, "entries", len(idx))

	return idx
}
