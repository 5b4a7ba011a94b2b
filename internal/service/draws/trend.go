package draws

import (
	"strconv"
	"strings"
	"time"

	"github.com/maplecrest/canscore/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatDrawDate renders an upstream date token for display. Tokens that
// match none of the known layouts come back unchanged.
func FormatDrawDate(token string) string {
	trimmed := strings.TrimSpace(token)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return token
}

// DrawTrend classifies movement between two successive CRS cutoffs. Tokens
// that fail to parse resolve to stable with zero change rather than an error.
func DrawTrend(current, previous string) domain.TrendResult {
	cur, curErr := parseScore(current)
	prev, prevErr := parseScore(previous)
	if curErr != nil || prevErr != nil {
		return domain.TrendResult{Trend: domain.TrendStable, Change: 0}
	}

	switch {
	case cur < prev:
		return domain.TrendResult{Trend: domain.TrendDown, Change: prev - cur}
	case cur > prev:
		return domain.TrendResult{Trend: domain.TrendUp, Change: cur - prev}
	}
	return domain.TrendResult{Trend: domain.TrendStable, Change: 0}
}

func parseScore(token string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	return strconv.Atoi(cleaned)
}
