package draws

import (
	"context"
	"fmt"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/pkg/store"
)

// fetchCachedRounds is the third strategy: rounds previously ingested into
// the store. Missing invitation and score fields come back as "N/A".
func (s *Service) fetchCachedRounds(ctx context.Context) ([]*domain.DrawRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no cached store configured")
	}

	rounds, err := s.store.ListRounds(ctx, store.ListRoundsOpts{})
	if err != nil {
		return nil, fmt.Errorf("store.ListRounds: %w", err)
	}

	records := make([]*domain.DrawRecord, 0, len(rounds))
	for _, round := range rounds {
		records = append(records, round.ToRecord())
	}

	return records, nil
}
