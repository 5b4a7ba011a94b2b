// Package ingest persists freshly fetched rounds so the cached tier has
// something to serve when the live sources go dark.
package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/pkg/logger"
	"github.com/maplecrest/canscore/internal/pkg/store"
	"github.com/maplecrest/canscore/internal/service/draws"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	draws *draws.Service
	store store.Store
}

func NewService(drawsService *draws.Service, st store.Store) *Service {
	return &Service{draws: drawsService, store: st}
}

// BackfillRounds fetches the live rounds and upserts every record. Upserts
// run concurrently; one failed row fails the whole backfill so a retry can
// re-run it idempotently.
func (s *Service) BackfillRounds(ctx context.Context) ([]*domain.DrawRound, error) {
	records, err := s.draws.FetchLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("draws.FetchLive: %w", err)
	}

	saved := make([]*domain.DrawRound, 0, len(records))
	savedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)

	for _, record := range records {
		record := record
		eg.Go(func() error {
			round, err := s.store.UpsertRound(egCtx, record)
			if err != nil {
				return fmt.Errorf("store.UpsertRound, round_number-%s: %w", record.RoundNumber, err)
			}

			savedMx.Lock()
			defer savedMx.Unlock()
			saved = append(saved, round)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	logger.Infof(ctx, "ingested %d rounds", len(saved))
	if total, err := s.store.CountRounds(ctx); err == nil {
		logger.Debugf(ctx, "cache now holds %d rounds", total)
	}

	return saved, nil
}
