package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/resolve"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
}

func TestDateResolverResolve(t *testing.T) {
	t.Parallel()

	resolver := resolve.NewDateResolverWithClock(fixedClock(2025))

	tests := []struct {
		name    string
		text    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "iso date",
			text: "2025-01-15",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 converted to utc",
			text: "2025-01-15T10:30:00+05:00",
			want: time.Date(2025, time.January, 15, 5, 30, 0, 0, time.UTC),
		},
		{
			name: "iso datetime without zone",
			text: "2025-01-15T10:30:00",
			want: time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "full month name",
			text: "January 15, 2025",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "abbreviated month name",
			text: "Jan 15, 2025",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month name without comma",
			text: "January 15 2025",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day first",
			text: "15 January 2025",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sept abbreviation",
			text: "Sept 14, 2024",
			want: time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "region suffix stripped and year injected",
			text: "6 January / Global",
			want: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year injection without region",
			text: "14 August",
			want: time.Date(2025, time.August, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "surrounding whitespace",
			text: "  January 15, 2025  ",
			want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
		{
			name:    "only region suffix",
			text:    "/ Global",
			wantErr: true,
		},
		{
			name:    "not a date at all",
			text:    "subscribe to our newsletter",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.Resolve(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, resolve.ErrUnparseableDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDateResolverIdempotent(t *testing.T) {
	t.Parallel()

	resolver := resolve.NewDateResolverWithClock(fixedClock(2025))

	inputs := []string{
		"January 15, 2025",
		"2025-01-15T10:30:00+05:00",
		"6 January / Global",
	}

	for _, input := range inputs {
		first, err := resolver.Resolve(input)
		require.NoError(t, err)

		again, err := resolver.Resolve(first.Format("2006-01-02"))
		require.NoError(t, err)
		assert.Equal(t, first.Format("2006-01-02"), again.Format("2006-01-02"))
	}
}

func TestDateResolverYearInjectionUsesClock(t *testing.T) {
	t.Parallel()

	resolver := resolve.NewDateResolverWithClock(fixedClock(2031))

	got, err := resolver.Resolve("6 January / Global")
	require.NoError(t, err)
	assert.Equal(t, 2031, got.Year())
}
