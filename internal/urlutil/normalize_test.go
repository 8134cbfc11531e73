package urlutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/urlutil"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips query parameters",
			raw:  "https://www.anthropic.com/engineering/post?utm_source=rss",
			want: "https://www.anthropic.com/engineering/post",
		},
		{
			name: "strips trailing slash",
			raw:  "https://www.uber.com/en-IN/blog/engineering/some-post/",
			want: "https://www.uber.com/en-IN/blog/engineering/some-post",
		},
		{
			name: "strips query and trailing slash together",
			raw:  "https://example.com/post/?ref=home",
			want: "https://example.com/post",
		},
		{
			name: "strips fragment",
			raw:  "https://example.com/post#section-2",
			want: "https://example.com/post",
		},
		{
			name: "already canonical",
			raw:  "https://developers.googleblog.com/2024/01/gemini.html",
			want: "https://developers.googleblog.com/2024/01/gemini.html",
		},
		{
			name: "multiple trailing slashes",
			raw:  "https://example.com/post///",
			want: "https://example.com/post",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, urlutil.Canonicalize(tt.raw))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	raws := []string{
		"https://example.com/post?a=1&b=2",
		"https://example.com/post/",
		"https://example.com/post/?a=1#frag",
	}

	for _, raw := range raws {
		once := urlutil.Canonicalize(raw)
		assert.Equal(t, once, urlutil.Canonicalize(once))
	}
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		href    string
		want    string
		wantErr bool
	}{
		{
			name: "root relative href",
			base: "https://www.anthropic.com",
			href: "/engineering/building-effective-agents",
			want: "https://www.anthropic.com/engineering/building-effective-agents",
		},
		{
			name: "absolute href returned untouched",
			base: "https://www.anthropic.com",
			href: "https://other.example.com/post",
			want: "https://other.example.com/post",
		},
		{
			name: "base with path",
			base: "https://www.uber.com/en-IN/blog/engineering/",
			href: "/blog/some-post/",
			want: "https://www.uber.com/blog/some-post/",
		},
		{
			name:    "empty href",
			base:    "https://example.com",
			href:    "",
			wantErr: true,
		},
		{
			name:    "relative href with empty base",
			base:    "",
			href:    "/post",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := urlutil.Absolute(tt.base, tt.href)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/engineering", urlutil.Path("https://www.anthropic.com/engineering"))
	assert.Equal(t, "/en-IN/blog/engineering", urlutil.Path("https://www.uber.com/en-IN/blog/engineering/"))
	assert.Equal(t, "", urlutil.Path("://bad"))
}
