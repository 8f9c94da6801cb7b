package highlight

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
)

// RequestCustom validates a user-chosen range and dispatches a custom
// highlight. It returns as soon as the request is recorded.
func (uc *HighlightUseCase) RequestCustom(ctx context.Context, userID string, start, end time.Time) (uuid.UUID, error) {
	switch {
	case userID == "":
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom: %w", errs.ErrUnauthenticated)
	case end.Before(start):
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom: %w", errs.ErrInvalidRange)
	case end.Sub(start) > uc.maxRange:
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom: %w", errs.ErrRangeTooLarge)
	}

	photos, err := uc.photos.ListByUserInRange(ctx, userID, start, end)
	if err != nil {
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom - uc.photos.ListByUserInRange: %w", err)
	}

	switch {
	case len(photos) < uc.minPhotos:
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom - found %d: %w", len(photos), errs.ErrTooFewPhotos)
	case len(photos) > uc.maxPhotos:
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom - found %d: %w", len(photos), errs.ErrTooManyPhotos)
	}

	// only requests that would dispatch spend quota
	if !uc.limiter.Allow(userID) {
		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom - %s: %w", userID, errs.ErrRateLimited)
	}

	h := &entity.Highlight{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      entity.KindCustom,
		Status:    entity.HighlightProcessing,
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: uc.clock(),
	}

	_, err = uc.dispatch(ctx, h, photos)
	if err != nil {
		dispatchesTotal.WithLabelValues(string(entity.KindCustom), outcomeFailed).Inc()

		return uuid.Nil, fmt.Errorf("HighlightUseCase - RequestCustom - uc.dispatch: %w", err)
	}

	dispatchesTotal.WithLabelValues(string(entity.KindCustom), outcomeDispatched).Inc()
	uc.logger.Info("custom highlight %s requested by %s with %d photos", h.ID, userID, len(photos))

	return h.ID, nil
}
