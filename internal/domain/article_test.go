package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/domain"
)

func TestNewArticleAnchorsToUTC(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)
	publishedAt := time.Date(2025, 1, 15, 22, 30, 0, 0, est)

	article := domain.NewArticle("Example Blog", " Post Title ", "https://example.com/post", publishedAt)

	assert.NotEmpty(t, article.ID)
	assert.Equal(t, "Post Title", article.Title)
	// 22:30 EST is 03:30 UTC the next day; the calendar date follows UTC.
	assert.Equal(t, "2025-01-16", article.Date)
	assert.Equal(t, time.UTC, article.PublishedAt.Location())
	assert.True(t, article.PublishedAt.Equal(publishedAt))
}

func TestNewArticleUniqueIDs(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	a := domain.NewArticle("S", "T", "https://example.com/a", now)
	b := domain.NewArticle("S", "T", "https://example.com/a", now)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestArticleValidate(t *testing.T) {
	t.Parallel()

	valid := domain.NewArticle("Example Blog", "Post", "https://example.com/post",
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = "   "
	require.ErrorIs(t, noTitle.Validate(), domain.ErrMissingTitle)

	noURL := valid
	noURL.URL = ""
	require.ErrorIs(t, noURL.Validate(), domain.ErrMissingURL)

	noDate := valid
	noDate.PublishedAt = time.Time{}
	require.ErrorIs(t, noDate.Validate(), domain.ErrMissingDate)
}

func TestCandidateComplete(t *testing.T) {
	t.Parallel()

	complete := domain.Candidate{
		Source:      "Example Blog",
		Title:       "Post",
		URL:         "https://example.com/post",
		PublishedAt: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, complete.Complete())

	missingTitle := complete
	missingTitle.Title = ""
	assert.False(t, missingTitle.Complete())

	missingDate := complete
	missingDate.PublishedAt = time.Time{}
	assert.False(t, missingDate.Complete())

	missingURL := complete
	missingURL.URL = ""
	assert.False(t, missingURL.Complete())
}
