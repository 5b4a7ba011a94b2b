package draws

import (
	"testing"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDrawTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		previous string
		want     domain.TrendResult
	}{
		{"up", "561", "542", domain.TrendResult{Trend: domain.TrendUp, Change: 19}},
		{"down", "542", "561", domain.TrendResult{Trend: domain.TrendDown, Change: 19}},
		{"equal", "542", "542", domain.TrendResult{Trend: domain.TrendStable, Change: 0}},
		{"non-numeric current", "abc", "561", domain.TrendResult{Trend: domain.TrendStable, Change: 0}},
		{"non-numeric previous", "561", "N/A", domain.TrendResult{Trend: domain.TrendStable, Change: 0}},
		{"comma separators", "1,005", "998", domain.TrendResult{Trend: domain.TrendUp, Change: 7}},
		{"padded tokens", " 561 ", "542", domain.TrendResult{Trend: domain.TrendUp, Change: 19}},
		{"empty", "", "", domain.TrendResult{Trend: domain.TrendStable, Change: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DrawTrend(tc.current, tc.previous))
		})
	}
}

func TestFormatDrawDate(t *testing.T) {
	assert.Equal(t, "August 19, 2025", FormatDrawDate("2025-08-19"))
	assert.Equal(t, "August 19, 2025", FormatDrawDate("August 19, 2025"))
	assert.Equal(t, "August 19, 2025", FormatDrawDate(" Aug 19, 2025 "))
	assert.Equal(t, "not a date", FormatDrawDate("not a date"), "unparseable tokens come back unchanged")
	assert.Equal(t, "", FormatDrawDate(""))
}
