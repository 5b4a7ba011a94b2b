package draws

import (
	"context"
	"errors"
	"testing"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.responses[testJSONURL] = `{"rounds":[
		{"drawNumberURL":"<a href='?q=356'>356</a>","drawDateFull":"August 19, 2025","drawName":"CEC","drawSize":"1,000","drawCRS":"500"},
		{"drawNumberURL":"<a href='?q=355'>355</a>","drawDateFull":"August 5, 2025","drawName":"CEC","drawSize":"2,000","drawCRS":"510"},
		{"drawNumberURL":"<a href='?q=354'>354</a>","drawDateFull":"July 22, 2025","drawName":"PNP","drawSize":"N/A","drawCRS":"N/A"}
	]}`
	svc := newTestService(fetcher, &fakeStore{})

	summary := svc.GetSummary(context.Background())

	require.NotNil(t, summary.Latest)
	assert.Equal(t, "356", summary.Latest.RoundNumber)
	assert.Equal(t, "August 19, 2025", summary.LatestDateDisplay)
	assert.Equal(t, domain.TrendResult{Trend: domain.TrendDown, Change: 10}, summary.Trend)
	assert.Equal(t, "505", summary.AverageCRS, "N/A rounds are skipped, not averaged as zero")
	assert.Equal(t, "1500", summary.AverageInvitations)
	assert.Equal(t, 3, summary.RoundsCounted)
	assert.Equal(t, domain.SourceRealTime, summary.Source)
}

func TestGetSummaryNoSources(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs[testJSONURL] = errors.New("down")
	fetcher.errs[testPageURL] = errors.New("down")
	svc := newTestService(fetcher, &fakeStore{err: errors.New("down")})

	summary := svc.GetSummary(context.Background())

	assert.Nil(t, summary.Latest)
	assert.Equal(t, domain.SourceFallback, summary.Source)
	assert.Equal(t, domain.TrendStable, summary.Trend.Trend)
	assert.Equal(t, "N/A", summary.AverageCRS)
	assert.Equal(t, "N/A", summary.AverageInvitations)
	assert.Zero(t, summary.RoundsCounted)
}
