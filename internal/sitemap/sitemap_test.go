package sitemap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/fetch"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/sitemap"
)

const sitemapXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://developers.googleblog.com/2025/01/gemini-update/</loc>
    <lastmod>2025-01-15</lastmod>
  </url>
  <url>
    <loc>https://developers.googleblog.com/2025/01/other-post?hl=en</loc>
    <lastmod>2025-01-10T08:00:00Z</lastmod>
  </url>
  <url>
    <loc>https://developers.googleblog.com/no-lastmod</loc>
  </url>
  <url>
    <lastmod>2025-01-01</lastmod>
  </url>
</urlset>`

func newTestBuilder(timeout time.Duration) *sitemap.Builder {
	return sitemap.NewBuilder(fetch.NewClient(timeout, "blogwatch-test/1.0"), logger.NewNoOp())
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sitemapXML))
	}))
	defer server.Close()

	idx := newTestBuilder(5 * time.Second).Build(context.Background(), server.URL)

	require.Len(t, idx, 2)

	lastMod, ok := idx.LastMod("https://developers.googleblog.com/2025/01/gemini-update")
	require.True(t, ok)
	assert.Equal(t, "2025-01-15", lastMod)

	lastMod, ok = idx.LastMod("https://developers.googleblog.com/2025/01/other-post")
	require.True(t, ok)
	assert.Equal(t, "2025-01-10T08:00:00Z", lastMod)

	_, ok = idx.LastMod("https://developers.googleblog.com/no-lastmod")
	assert.False(t, ok)
}

func TestBuilderBuildFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	idx := newTestBuilder(5 * time.Second).Build(context.Background(), server.URL)
	assert.Empty(t, idx)
}

func TestBuilderBuildParseFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<urlset><url><loc>broken"))
	}))
	defer server.Close()

	idx := newTestBuilder(5 * time.Second).Build(context.Background(), server.URL)
	assert.Empty(t, idx)
}

func TestBuilderBuildUnreachable(t *testing.T) {
	t.Parallel()

	idx := newTestBuilder(50 * time.Millisecond).Build(context.Background(), "http://127.0.0.1:1/sitemap.xml")
	assert.Empty(t, idx)
}
