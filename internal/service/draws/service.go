// Package draws acquires Express Entry invitation rounds through an ordered
// chain of sources and serves them paginated. Each strategy isolates its own
// failure; the caller only ever sees a result, tagged with the source that
// produced it.
package draws

import (
	"context"
	"fmt"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/pkg/logger"
	"github.com/maplecrest/canscore/internal/pkg/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// Fetcher is the transport the strategies share; fetch.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type Config struct {
	RoundsJSONURL string
	RoundsPageURL string
}

type Service struct {
	fetcher Fetcher
	store   store.Store
	cfg     Config
}

func NewService(fetcher Fetcher, st store.Store, cfg Config) *Service {
	return &Service{fetcher: fetcher, store: st, cfg: cfg}
}

// GetDraws runs the strategy chain and paginates whatever the first
// successful source produced. It never fails: when every source is down the
// result is an empty page tagged fallback.
func (s *Service) GetDraws(ctx context.Context, page, limit int) *domain.PaginatedResult {
	records, source := s.acquire(ctx)
	return paginate(records, page, limit, source)
}

// acquire tries the sources in strict order and short-circuits on the first
// non-empty result. Strategy errors are logged and swallowed here; nothing
// propagates past this boundary.
func (s *Service) acquire(ctx context.Context) ([]*domain.DrawRecord, string) {
	records, err := s.fetchRoundsJSON(ctx)
	if err != nil {
		logger.Warnf(ctx, "rounds json fetch failed: %s", err.Error())
	} else if len(records) > 0 {
		return records, domain.SourceRealTime
	}

	records, err = s.fetchRoundsHTML(ctx)
	if err != nil {
		logger.Warnf(ctx, "rounds page parse failed: %s", err.Error())
	} else if len(records) > 0 {
		return records, domain.SourceRealTime
	}

	records, err = s.fetchCachedRounds(ctx)
	if err != nil {
		logger.Warnf(ctx, "cached rounds fetch failed: %s", err.Error())
	} else if len(records) > 0 {
		return records, domain.SourceCached
	}

	return nil, domain.SourceFallback
}

// FetchLive runs only the real-time strategies, for ingestion. Unlike
// GetDraws it surfaces an error when both are down, since a backfill with
// nothing to write is a failure worth reporting.
func (s *Service) FetchLive(ctx context.Context) ([]*domain.DrawRecord, error) {
	records, jsonErr := s.fetchRoundsJSON(ctx)
	if jsonErr == nil && len(records) > 0 {
		return records, nil
	}
	if jsonErr != nil {
		logger.Warnf(ctx, "rounds json fetch failed: %s", jsonErr.Error())
	}

	records, htmlErr := s.fetchRoundsHTML(ctx)
	if htmlErr == nil && len(records) > 0 {
		return records, nil
	}
	if htmlErr != nil {
		logger.Warnf(ctx, "rounds page parse failed: %s", htmlErr.Error())
	}

	return nil, fmt.Errorf("no live rounds source available")
}
