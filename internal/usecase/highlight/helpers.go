package highlight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/google/uuid"
)

// dispatch records h and the generation request for it in one transaction.
// created is false when a periodic highlight for the same period already exists.
func (uc *HighlightUseCase) dispatch(ctx context.Context, h *entity.Highlight, photos []*entity.Photo) (bool, error) {
	req := dto.GenerationRequest{
		UserID:      h.UserID,
		Photos:      make([]string, 0, len(photos)),
		HighlightID: h.ID,
		Kind:        h.Kind,
	}
	if h.Period != nil {
		req.Period = *h.Period
	}
	for _, p := range photos {
		req.Photos = append(req.Photos, p.StoragePath)
	}

	event, err := uc.createOutboxEvent(req)
	if err != nil {
		return false, err
	}

	var created bool
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = uc.highlights.Create(ctx, h)
		if err != nil {
			return fmt.Errorf("uc.highlights.Create: %w", err)
		}
		if !created {
			return nil
		}

		if err := uc.outbox.Create(ctx, event); err != nil {
			return fmt.Errorf("uc.outbox.Create: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("uc.transactor.WithinTransaction: %w", err)
	}

	return created, nil
}

func (uc *HighlightUseCase) createOutboxEvent(req dto.GenerationRequest) (*entity.OutboxEvent, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("HighlightUseCase - createOutboxEvent - json.Marshal: %w", err)
	}

	return &entity.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: req.HighlightID,
		Payload:     b,
		Status:      entity.Pending,
		CreatedAt:   uc.clock(),
	}, nil
}
