package photo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
)

type PhotoUseCase struct {
	store      repo.ObjectStore
	photos     repo.PhotoRepo
	streak     usecase.StreakTracker
	transactor repo.Transactor
	logger     logger.Interface
}

func New(
	store repo.ObjectStore,
	photos repo.PhotoRepo,
	streak usecase.StreakTracker,
	transactor repo.Transactor,
	l logger.Interface,
) *PhotoUseCase {
	return &PhotoUseCase{
		store:      store,
		photos:     photos,
		streak:     streak,
		transactor: transactor,
		logger:     l,
	}
}

// StoragePath is photos/{user}/{yyyyMMdd}/{id}{ext}, dated by capture time.
func StoragePath(userID string, id uuid.UUID, takenAt time.Time, ext string) string {
	return fmt.Sprintf("photos/%s/%s/%s%s", userID, takenAt.Format("20060102"), id, ext)
}

// Upload stores the photo binary, then records it and advances the owner's
// streak in one transaction.
func (uc *PhotoUseCase) Upload(
	ctx context.Context,
	userID string,
	data io.Reader,
	ext string,
	contentType string,
	size int64,
	takenAt time.Time,
) (*entity.Photo, error) {
	if userID == "" {
		return nil, fmt.Errorf("PhotoUseCase - Upload: %w", errs.ErrUnauthenticated)
	}

	id := uuid.New()
	key := StoragePath(userID, id, takenAt, ext)

	// 1. object first, so a recorded photo always has a binary
	err := uc.store.Upload(ctx, key, data, contentType, size)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - Upload - uc.store.Upload: %w", err)
	}

	photo := &entity.Photo{
		ID:          id,
		UserID:      userID,
		TakenAt:     takenAt,
		StoragePath: key,
		CreatedAt:   time.Now(),
	}

	// 2. record + streak
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.photos.Create(ctx, photo); err != nil {
			return fmt.Errorf("uc.photos.Create: %w", err)
		}

		if _, err := uc.streak.Track(ctx, userID); err != nil {
			return fmt.Errorf("uc.streak.Track: %w", err)
		}

		return nil
	})
	if err != nil {
		deleteErr := uc.store.Delete(context.WithoutCancel(ctx), key)
		if deleteErr != nil {
			uc.logger.Error(deleteErr, "PhotoUseCase - Upload - uc.store.Delete")
		}

		return nil, fmt.Errorf("PhotoUseCase - Upload - uc.transactor.WithinTransaction: %w", err)
	}

	return photo, nil
}

func (uc *PhotoUseCase) Stats(ctx context.Context, userID string) (*entity.Stats, error) {
	if userID == "" {
		return nil, fmt.Errorf("PhotoUseCase - Stats: %w", errs.ErrUnauthenticated)
	}

	stats, err := uc.streak.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - Stats - uc.streak.Get: %w", err)
	}

	return stats, nil
}
