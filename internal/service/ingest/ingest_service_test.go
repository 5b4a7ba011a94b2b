package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/pkg/store"
	"github.com/maplecrest/canscore/internal/service/draws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonURL = "https://upstream.test/rounds.json"

type staticFetcher struct {
	body string
	err  error
}

func (f *staticFetcher) Get(_ context.Context, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

type recordingStore struct {
	mx      sync.Mutex
	err     error
	upserts []*domain.DrawRecord
}

func (s *recordingStore) UpsertRound(_ context.Context, record *domain.DrawRecord) (*domain.DrawRound, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.upserts = append(s.upserts, record)
	return &domain.DrawRound{RoundNumber: record.RoundNumber}, nil
}

func (s *recordingStore) ListRounds(_ context.Context, _ store.ListRoundsOpts) ([]*domain.DrawRound, error) {
	return nil, nil
}

func (s *recordingStore) CountRounds(_ context.Context) (int64, error) {
	return 0, nil
}

func newTestService(fetcher draws.Fetcher, st store.Store) *Service {
	drawsService := draws.NewService(fetcher, st, draws.Config{
		RoundsJSONURL: jsonURL,
		RoundsPageURL: "https://upstream.test/rounds.html",
	})
	return NewService(drawsService, st)
}

func TestBackfillRounds(t *testing.T) {
	fetcher := &staticFetcher{body: `{"rounds":[
		{"drawNumberURL":"<a href='?q=356'>356</a>","drawDateFull":"August 19, 2025","drawName":"CEC","drawSize":"1,000","drawCRS":"500"},
		{"drawNumberURL":"<a href='?q=355'>355</a>","drawDateFull":"August 5, 2025","drawName":"CEC","drawSize":"2,000","drawCRS":"510"}
	]}`}
	st := &recordingStore{}

	saved, err := newTestService(fetcher, st).BackfillRounds(context.Background())

	require.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Len(t, st.upserts, 2)
}

func TestBackfillRoundsNoLiveSource(t *testing.T) {
	fetcher := &staticFetcher{err: errors.New("upstream down")}

	_, err := newTestService(fetcher, &recordingStore{}).BackfillRounds(context.Background())

	assert.ErrorContains(t, err, "no live rounds source")
}

func TestBackfillRoundsStoreFailure(t *testing.T) {
	fetcher := &staticFetcher{body: `{"rounds":[
		{"drawNumberURL":"<a href='?q=356'>356</a>","drawDateFull":"August 19, 2025","drawName":"CEC","drawSize":"1,000","drawCRS":"500"}
	]}`}
	st := &recordingStore{err: errors.New("insert failed")}

	_, err := newTestService(fetcher, st).BackfillRounds(context.Background())

	assert.ErrorContains(t, err, "insert failed")
}
