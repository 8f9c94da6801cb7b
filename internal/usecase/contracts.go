package usecase

import (
	"context"
	"io"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/google/uuid"
)

type (
	AssetTransfer interface {
		Fetch(ctx context.Context, objectPath, localPath string) error
		Publish(ctx context.Context, localPath, objectPath, contentType string) error
	}

	GenerationUseCase interface {
		Generate(ctx context.Context, req dto.GenerationRequest) (string, error)
	}

	HighlightUseCase interface {
		RunMonthly(ctx context.Context, now time.Time) (*dto.MonthlyReport, error)
		RequestCustom(ctx context.Context, userID string, start, end time.Time) (uuid.UUID, error)
		Get(ctx context.Context, userID string, id uuid.UUID) (*entity.Highlight, error)
		OpenVideo(ctx context.Context, userID string, id uuid.UUID) (io.ReadCloser, error)
	}

	PhotoUseCase interface {
		Upload(
			ctx context.Context,
			userID string,
			data io.Reader,
			ext string,
			contentType string,
			size int64,
			takenAt time.Time,
		) (*entity.Photo, error)
		Stats(ctx context.Context, userID string) (*entity.Stats, error)
	}

	StreakTracker interface {
		Track(ctx context.Context, userID string) (*entity.Stats, error)
		Get(ctx context.Context, userID string) (*entity.Stats, error)
	}

	OutboxUseCase interface {
		ClaimPendingEvents(ctx context.Context, limit, maxRetries int) ([]*entity.OutboxEvent, error)
		MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error
		IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		CleanupOutbox(ctx context.Context, retention time.Duration) error
	}
)
