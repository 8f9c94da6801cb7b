package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/google/uuid"
)

type OutboxUseCase struct {
	outbox     repo.OutboxRepo
	transactor repo.Transactor
	logger     logger.Interface
}

func New(outbox repo.OutboxRepo, transactor repo.Transactor, l logger.Interface) *OutboxUseCase {
	return &OutboxUseCase{
		outbox:     outbox,
		transactor: transactor,
		logger:     l,
	}
}

// ClaimPendingEvents locks a batch of pending events and marks it processing,
// so concurrent relays never send the same event twice.
func (uc *OutboxUseCase) ClaimPendingEvents(ctx context.Context, limit, maxRetries int) ([]*entity.OutboxEvent, error) {
	var events []*entity.OutboxEvent

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		events, err = uc.outbox.GetPendingEvents(ctx, limit, maxRetries)
		if err != nil {
			return fmt.Errorf("uc.outbox.GetPendingEvents: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		err = uc.outbox.MarkAsProcessingBatch(ctx, ids(events))
		if err != nil {
			return fmt.Errorf("uc.outbox.MarkAsProcessingBatch: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("OutboxUseCase - ClaimPendingEvents: %w", err)
	}

	return events, nil
}

func (uc *OutboxUseCase) MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outbox.MarkAsProcessedBatch(ctx, ids(events))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - MarkAsProcessedBatch - uc.outbox.MarkAsProcessedBatch: %w", err)
	}

	return nil
}

// IncrementRetryCountBatch returns the events to pending with one more attempt spent.
func (uc *OutboxUseCase) IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outbox.IncrementRetryCountBatch(ctx, ids(events))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - IncrementRetryCountBatch - uc.outbox.IncrementRetryCountBatch: %w", err)
	}

	return nil
}

func (uc *OutboxUseCase) MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error {
	err := uc.outbox.MarkMaxRetriesAsFailed(ctx, maxRetries)
	if err != nil {
		return fmt.Errorf("OutboxUseCase - MarkMaxRetriesAsFailed - uc.outbox.MarkMaxRetriesAsFailed: %w", err)
	}

	return nil
}

func (uc *OutboxUseCase) CleanupOutbox(ctx context.Context, retention time.Duration) error {
	count, err := uc.outbox.DeleteOldProcessedAndFailed(ctx, time.Now().Add(-retention))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - CleanupOutbox - uc.outbox.DeleteOldProcessedAndFailed: %w", err)
	}

	if count > 0 {
		uc.logger.Info("deleted old outbox events, count = %d", count)
	}

	return nil
}

func ids(events []*entity.OutboxEvent) uuid.UUIDs {
	out := make(uuid.UUIDs, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}

	return out
}
