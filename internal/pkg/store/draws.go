package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maplecrest/canscore/internal/domain"
)

var drawRoundColumns = []string{
	"id", "round_number", "draw_date", "round_type", "invitations", "crs_score", "created_at", "updated_at",
}

type ListRoundsOpts struct {
	RoundType *string
	Limit     uint64
	Offset    uint64
}

// UpsertRound inserts or refreshes a round keyed by its round number and
// returns the stored row.
func (s *store) UpsertRound(ctx context.Context, record *domain.DrawRecord) (*domain.DrawRound, error) {
	query := builder().Insert(tableDrawRounds).
		Columns("id", "round_number", "draw_date", "round_type", "invitations", "crs_score").
		Values(uuid.New(), record.RoundNumber, record.Date, record.RoundType, record.Invitations, record.CRSScore).
		Suffix(`
on conflict (round_number)
do update
set
	draw_date = excluded.draw_date,
	round_type = excluded.round_type,
	invitations = excluded.invitations,
	crs_score = excluded.crs_score,
	updated_at = now()`)

	if err := s.exec(ctx, query); err != nil {
		return nil, fmt.Errorf("insert round, round_number-%s: %w", record.RoundNumber, err)
	}

	selectQuery := builder().Select(drawRoundColumns...).
		From(tableDrawRounds).
		Where(sq.Eq{"round_number": record.RoundNumber})

	selected, err := s.getRound(ctx, selectQuery)
	if err != nil {
		return nil, fmt.Errorf("select round, round_number-%s: %w", record.RoundNumber, err)
	}

	return selected, nil
}

func (s *store) ListRounds(ctx context.Context, opts ListRoundsOpts) ([]*domain.DrawRound, error) {
	query := builder().Select(drawRoundColumns...).
		From(tableDrawRounds).
		OrderBy("draw_date desc, round_number desc")

	if opts.RoundType != nil {
		query = query.Where(sq.Eq{"round_type": *opts.RoundType})
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, wrapErr(err)
	}

	selected, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.DrawRound])
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountRounds(ctx context.Context) (int64, error) {
	query := builder().Select("count(*)").From(tableDrawRounds)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return 0, wrapErr(err)
	}

	count, err := pgx.CollectOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) exec(ctx context.Context, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) getRound(ctx context.Context, query sq.Sqlizer) (*domain.DrawRound, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, wrapErr(err)
	}

	selected, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.DrawRound])
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
