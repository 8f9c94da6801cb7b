//go:generate go run go.uber.org/mock/mockgen -source=contracts.go -destination=mocks/mock.go -package=mocks
package repo

import (
	"context"
	"io"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/google/uuid"
)

type (
	// ObjectStore holds photo and video binaries. Download returns errs.ErrAssetNotFound
	// for a missing key.
	ObjectStore interface {
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		Download(ctx context.Context, key string) (io.ReadCloser, error)
		Delete(ctx context.Context, key string) error
	}

	PhotoRepo interface {
		Create(ctx context.Context, photo *entity.Photo) error
		// ListTakenBetween returns photos of all users with start <= taken_at < end, oldest first.
		ListTakenBetween(ctx context.Context, start, end time.Time) ([]*entity.Photo, error)
		// ListByUserInRange returns one user's photos with start <= taken_at <= end, oldest first.
		ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Photo, error)
	}

	HighlightRepo interface {
		// Create inserts h. For periodic highlights it reports false, without error,
		// when (user, period) already has a record.
		Create(ctx context.Context, h *entity.Highlight) (bool, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Highlight, error)
		MarkCompleted(ctx context.Context, id uuid.UUID, outputPath string) error
		MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	}

	StatsRepo interface {
		// GetForUpdate locks the user's row for the ambient transaction. A user
		// without stats gets a zero row (StreakCurrent == 0) first.
		GetForUpdate(ctx context.Context, userID string) (*entity.Stats, error)
		// Get reads without locking; a missing user is errs.ErrRecordNotFound.
		Get(ctx context.Context, userID string) (*entity.Stats, error)
		Save(ctx context.Context, stats *entity.Stats) error
	}

	OutboxRepo interface {
		Create(ctx context.Context, event *entity.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int, maxRetries int) ([]*entity.OutboxEvent, error)
		MarkAsProcessingBatch(ctx context.Context, ids uuid.UUIDs) error
		MarkAsProcessedBatch(ctx context.Context, ids uuid.UUIDs) error
		IncrementRetryCountBatch(ctx context.Context, ids uuid.UUIDs) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		DeleteOldProcessedAndFailed(ctx context.Context, olderThan time.Time) (int64, error)
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
