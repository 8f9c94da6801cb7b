package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/postgres"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	statsTable = "stats"

	// Columns
	statsUserIDColumn        = "user_id"
	statsStreakCurrentColumn = "streak_current"
	statsStreakMaxColumn     = "streak_max"
	statsLastDateColumn      = "last_date"
)

type StatsRepo struct {
	*postgres.Postgres
}

func NewStatsRepo(pg *postgres.Postgres) *StatsRepo {
	return &StatsRepo{pg}
}

// GetForUpdate seeds a zero row for a new user and locks the user's row in the
// ambient transaction. Concurrent first uploads block on the seed insert until
// the first transaction finishes, then read its result.
func (r *StatsRepo) GetForUpdate(ctx context.Context, userID string) (*entity.Stats, error) {
	seed, args, err := r.Builder.
		Insert(statsTable).
		Columns(
			statsUserIDColumn,
			statsStreakCurrentColumn,
			statsStreakMaxColumn,
			statsLastDateColumn,
		).
		Values(userID, 0, 0, squirrel.Expr("now()")).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", statsUserIDColumn)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - GetForUpdate - r.Builder.ToSql: %w", err)
	}

	_, err = r.GetExecutor(ctx).Exec(ctx, seed, args...)
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - GetForUpdate - executor.Exec: %w", err)
	}

	return r.get(ctx, "GetForUpdate", "FOR UPDATE", userID)
}

// Get reads without locking.
func (r *StatsRepo) Get(ctx context.Context, userID string) (*entity.Stats, error) {
	return r.get(ctx, "Get", "", userID)
}

func (r *StatsRepo) get(ctx context.Context, op, suffix, userID string) (*entity.Stats, error) {
	b := r.Builder.
		Select(
			statsUserIDColumn,
			statsStreakCurrentColumn,
			statsStreakMaxColumn,
			statsLastDateColumn,
		).
		From(statsTable).
		Where(squirrel.Eq{statsUserIDColumn: userID})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - %s - r.Builder.ToSql: %w", op, err)
	}

	var s entity.Stats
	err = r.GetExecutor(ctx).QueryRow(ctx, sql, args...).Scan(
		&s.UserID,
		&s.StreakCurrent,
		&s.StreakMax,
		&s.LastDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("StatsRepo - %s: %w", op, errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("StatsRepo - %s - executor.QueryRow: %w", op, err)
	}

	return &s, nil
}

func (r *StatsRepo) Save(ctx context.Context, stats *entity.Stats) error {
	sql, args, err := r.Builder.
		Insert(statsTable).
		Columns(
			statsUserIDColumn,
			statsStreakCurrentColumn,
			statsStreakMaxColumn,
			statsLastDateColumn,
		).
		Values(
			stats.UserID,
			stats.StreakCurrent,
			stats.StreakMax,
			stats.LastDate,
		).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s, %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s",
			statsUserIDColumn, statsStreakCurrentColumn, statsStreakMaxColumn, statsLastDateColumn,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("StatsRepo - Save - r.Builder.ToSql: %w", err)
	}

	_, err = r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("StatsRepo - Save - executor.Exec: %w", err)
	}

	return nil
}
