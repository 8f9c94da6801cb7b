package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/postgres"
)

const (
	// Table
	photosTable = "photos"

	// Columns
	photoIDColumn          = "id"
	photoUserIDColumn      = "user_id"
	photoTakenAtColumn     = "taken_at"
	photoStoragePathColumn = "storage_path"
	photoCreatedAtColumn   = "created_at"
)

type PhotoRepo struct {
	*postgres.Postgres
}

func NewPhotoRepo(pg *postgres.Postgres) *PhotoRepo {
	return &PhotoRepo{pg}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	sql, args, err := r.Builder.
		Insert(photosTable).
		Columns(
			photoIDColumn,
			photoUserIDColumn,
			photoTakenAtColumn,
			photoStoragePathColumn,
			photoCreatedAtColumn,
		).
		Values(
			photo.ID,
			photo.UserID,
			photo.TakenAt,
			photo.StoragePath,
			photo.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("PhotoRepo - Create - r.Builder.ToSql: %w", err)
	}

	_, err = r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("PhotoRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *PhotoRepo) ListTakenBetween(ctx context.Context, start, end time.Time) ([]*entity.Photo, error) {
	return r.list(ctx, "ListTakenBetween", squirrel.And{
		squirrel.GtOrEq{photoTakenAtColumn: start},
		squirrel.Lt{photoTakenAtColumn: end},
	})
}

func (r *PhotoRepo) ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Photo, error) {
	return r.list(ctx, "ListByUserInRange", squirrel.And{
		squirrel.Eq{photoUserIDColumn: userID},
		squirrel.GtOrEq{photoTakenAtColumn: start},
		squirrel.LtOrEq{photoTakenAtColumn: end},
	})
}

func (r *PhotoRepo) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*entity.Photo, error) {
	sql, args, err := r.Builder.
		Select(
			photoIDColumn,
			photoUserIDColumn,
			photoTakenAtColumn,
			photoStoragePathColumn,
			photoCreatedAtColumn,
		).
		From(photosTable).
		Where(where).
		OrderBy(photoTakenAtColumn+" ASC", photoIDColumn+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PhotoRepo - %s - r.Builder.ToSql: %w", op, err)
	}

	rows, err := r.GetExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepo - %s - executor.Query: %w", op, err)
	}
	defer rows.Close()

	var photos []*entity.Photo
	for rows.Next() {
		var p entity.Photo
		err = rows.Scan(&p.ID, &p.UserID, &p.TakenAt, &p.StoragePath, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("PhotoRepo - %s - rows.Scan: %w", op, err)
		}
		photos = append(photos, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PhotoRepo - %s - rows.Err: %w", op, err)
	}

	return photos, nil
}
