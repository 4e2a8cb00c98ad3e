package timestats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart string
	}{
		{"weekly", "2024-06-08"},
		{"monthly", "2024-05-16"},
		{"yearly", "2023-06-16"},
		{"", "2024-06-08"},
		{"quarterly", "2024-06-08"}, // unknown tokens fall back to weekly
	}

	for _, tt := range tests {
		t.Run("period "+tt.period, func(t *testing.T) {
			window := ResolvePeriod(tt.period, now)

			assert.Equal(t, tt.wantStart, window.StartDate())
			assert.Equal(t, "2024-06-15", window.EndDate())
			assert.Equal(t, now, window.End)
		})
	}
}

func TestResolvePeriodWindowCoversActivityDate(t *testing.T) {
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	window := ResolvePeriod(PeriodWeekly, now)

	// Lexicographic comparison on ISO dates is the filter the store uses.
	assert.True(t, "2024-01-01" >= window.StartDate())
	assert.True(t, "2024-01-01" <= window.EndDate())
}

func TestNormalizePeriod(t *testing.T) {
	assert.Equal(t, "weekly", NormalizePeriod(""))
	assert.Equal(t, "weekly", NormalizePeriod("daily"))
	assert.Equal(t, "monthly", NormalizePeriod("monthly"))
	assert.Equal(t, "yearly", NormalizePeriod("yearly"))
}
