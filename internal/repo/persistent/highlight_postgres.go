package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/postgres"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	highlightsTable = "highlights"

	// Columns
	highlightIDColumn            = "id"
	highlightUserIDColumn        = "user_id"
	highlightKindColumn          = "kind"
	highlightStatusColumn        = "status"
	highlightPeriodColumn        = "period"
	highlightStartDateColumn     = "start_date"
	highlightEndDateColumn       = "end_date"
	highlightOutputPathColumn    = "output_path"
	highlightFailureReasonColumn = "failure_reason"
	highlightCreatedAtColumn     = "created_at"
	highlightCompletedAtColumn   = "completed_at"
)

type HighlightRepo struct {
	*postgres.Postgres
}

func NewHighlightRepo(pg *postgres.Postgres) *HighlightRepo {
	return &HighlightRepo{pg}
}

func (r *HighlightRepo) Create(ctx context.Context, h *entity.Highlight) (bool, error) {
	b := r.Builder.
		Insert(highlightsTable).
		Columns(
			highlightIDColumn,
			highlightUserIDColumn,
			highlightKindColumn,
			highlightStatusColumn,
			highlightPeriodColumn,
			highlightStartDateColumn,
			highlightEndDateColumn,
			highlightCreatedAtColumn,
		).
		Values(
			h.ID,
			h.UserID,
			h.Kind,
			h.Status,
			h.Period,
			h.StartDate,
			h.EndDate,
			h.CreatedAt,
		)

	if h.Kind == entity.KindPeriodic {
		// matches the partial unique index on (user_id, period)
		b = b.Suffix("ON CONFLICT (user_id, period) WHERE kind = 'periodic' DO NOTHING")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("HighlightRepo - Create - r.Builder.ToSql: %w", err)
	}

	tag, err := r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("HighlightRepo - Create - executor.Exec: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *HighlightRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Highlight, error) {
	sql, args, err := r.Builder.
		Select(
			highlightIDColumn,
			highlightUserIDColumn,
			highlightKindColumn,
			highlightStatusColumn,
			highlightPeriodColumn,
			highlightStartDateColumn,
			highlightEndDateColumn,
			highlightOutputPathColumn,
			highlightFailureReasonColumn,
			highlightCreatedAtColumn,
			highlightCompletedAtColumn,
		).
		From(highlightsTable).
		Where(squirrel.Eq{highlightIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("HighlightRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	var h entity.Highlight
	err = r.GetExecutor(ctx).QueryRow(ctx, sql, args...).Scan(
		&h.ID,
		&h.UserID,
		&h.Kind,
		&h.Status,
		&h.Period,
		&h.StartDate,
		&h.EndDate,
		&h.OutputPath,
		&h.FailureReason,
		&h.CreatedAt,
		&h.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("HighlightRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("HighlightRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &h, nil
}

func (r *HighlightRepo) MarkCompleted(ctx context.Context, id uuid.UUID, outputPath string) error {
	return r.finish(ctx, "MarkCompleted", id, squirrel.Eq{
		highlightStatusColumn:        entity.HighlightCompleted,
		highlightOutputPathColumn:    outputPath,
		highlightFailureReasonColumn: nil,
	})
}

func (r *HighlightRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.finish(ctx, "MarkFailed", id, squirrel.Eq{
		highlightStatusColumn:        entity.HighlightFailed,
		highlightFailureReasonColumn: reason,
	})
}

func (r *HighlightRepo) finish(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	sql, args, err := r.Builder.
		Update(highlightsTable).
		SetMap(values).
		Set(highlightCompletedAtColumn, time.Now()).
		Where(squirrel.Eq{highlightIDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("HighlightRepo - %s - r.Builder.ToSql: %w", op, err)
	}

	tag, err := r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("HighlightRepo - %s - executor.Exec: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("HighlightRepo - %s: %w", op, errs.ErrRecordNotFound)
	}

	return nil
}
