package draws

import (
	"context"
	"strings"
	"time"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/shopspring/decimal"
)

// summaryWindow bounds how many recent rounds feed the averages.
const summaryWindow = 10

// GetSummary aggregates the most recent rounds: latest cutoff, trend against
// the round before it, and windowed averages. Like GetDraws it never fails;
// with no source available the summary is empty and tagged fallback.
func (s *Service) GetSummary(ctx context.Context) *domain.DrawSummary {
	records, source := s.acquire(ctx)

	summary := &domain.DrawSummary{
		Trend:              domain.TrendResult{Trend: domain.TrendStable},
		AverageCRS:         "N/A",
		AverageInvitations: "N/A",
		Source:             source,
		LastUpdated:        time.Now().UTC(),
	}
	if len(records) == 0 {
		return summary
	}

	summary.Latest = records[0]
	summary.LatestDateDisplay = FormatDrawDate(records[0].Date)
	if len(records) > 1 {
		summary.Trend = DrawTrend(records[0].CRSScore, records[1].CRSScore)
	}

	window := records
	if len(window) > summaryWindow {
		window = window[:summaryWindow]
	}
	summary.RoundsCounted = len(window)

	if avg, counted := averageOf(window, func(r *domain.DrawRecord) string { return r.CRSScore }); counted > 0 {
		summary.AverageCRS = avg.Round(1).String()
	}
	if avg, counted := averageOf(window, func(r *domain.DrawRecord) string { return r.Invitations }); counted > 0 {
		summary.AverageInvitations = avg.Round(0).String()
	}

	return summary
}

// averageOf averages one field across the window, skipping tokens that do
// not parse ("N/A" placeholders, blanks). Comma thousands separators are
// tolerated.
func averageOf(records []*domain.DrawRecord, pick func(*domain.DrawRecord) string) (decimal.Decimal, int) {
	sum := decimal.Decimal{}
	counted := 0
	for _, record := range records {
		cleaned := strings.ReplaceAll(strings.TrimSpace(pick(record)), ",", "")
		val, err := decimal.NewFromString(cleaned)
		if err != nil {
			continue
		}
		sum = sum.Add(val)
		counted++
	}
	if counted == 0 {
		return decimal.Decimal{}, 0
	}
	return sum.Div(decimal.NewFromInt(int64(counted))), counted
}
