package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/maplecrest/canscore/internal/domain"
)

// Pool is the subset of pgxpool.Pool the store uses.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Store interface {
	UpsertRound(ctx context.Context, record *domain.DrawRecord) (*domain.DrawRound, error)
	ListRounds(ctx context.Context, opts ListRoundsOpts) ([]*domain.DrawRound, error)
	CountRounds(ctx context.Context) (int64, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
