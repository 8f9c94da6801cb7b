package outbox

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/infrastructure"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
)

// Config -.
type Config struct {
	PollInterval        time.Duration
	CleanupInterval     time.Duration
	MarkFailedInterval  time.Duration
	ProcessBatchTimeout time.Duration
	Retention           time.Duration
	BatchSize           int
	MaxRetries          int
}

// OutboxRelay moves generation requests from the outbox table to the event transport.
type OutboxRelay struct {
	uc     usecase.OutboxUseCase
	es     infrastructure.EventsSender
	logger logger.Interface
	cfg    Config

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	started atomic.Bool
}

func New(uc usecase.OutboxUseCase, es infrastructure.EventsSender, l logger.Interface, cfg Config) *OutboxRelay {
	return &OutboxRelay{
		uc:     uc,
		es:     es,
		logger: l,
		cfg:    cfg,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return fmt.Errorf("OutboxRelay - Start - relay already started")
	}

	r.ctx, r.cancel = context.WithCancel(ctx)

	// 1. send pending events
	r.worker(r.cfg.PollInterval, func() {
		batchCtx, batchCancel := context.WithTimeout(r.ctx, r.cfg.ProcessBatchTimeout)
		r.processEventsBatch(batchCtx)
		batchCancel()
	})

	// 2. give up on events past the retry budget
	r.worker(r.cfg.MarkFailedInterval, func() {
		err := r.uc.MarkMaxRetriesAsFailed(r.ctx, r.cfg.MaxRetries)
		if err != nil {
			r.logger.Error(err, "OutboxRelay - Start - worker - r.uc.MarkMaxRetriesAsFailed")
		}
	})

	// 3. drop processed/failed events past retention
	r.worker(r.cfg.CleanupInterval, func() {
		err := r.uc.CleanupOutbox(r.ctx, r.cfg.Retention)
		if err != nil {
			r.logger.Error(err, "OutboxRelay - Start - worker - r.uc.CleanupOutbox")
		}
	})

	return nil
}

// TODO: requeue events left in processing when the relay dies between claim and send.
func (r *OutboxRelay) processEventsBatch(ctx context.Context) {
	events, err := r.uc.ClaimPendingEvents(ctx, r.cfg.BatchSize, r.cfg.MaxRetries)
	if err != nil {
		r.logger.Error(err, "OutboxRelay - processEventsBatch - r.uc.ClaimPendingEvents")

		return
	}
	if len(events) == 0 {
		return
	}

	err = r.es.SendEvents(ctx, events)
	if err != nil {
		r.logger.Error(err, "OutboxRelay - processEventsBatch - r.es.SendEvents")

		incErr := r.uc.IncrementRetryCountBatch(context.WithoutCancel(ctx), events)
		if incErr != nil {
			r.logger.Error(incErr, "OutboxRelay - processEventsBatch - r.uc.IncrementRetryCountBatch")
		}

		return
	}

	err = r.uc.MarkAsProcessedBatch(context.WithoutCancel(ctx), events)
	if err != nil {
		r.logger.Error(err, "OutboxRelay - processEventsBatch - r.uc.MarkAsProcessedBatch")

		return
	}

	r.logger.Debug("outbox relay sent %d events", len(events))
}

func (r *OutboxRelay) worker(interval time.Duration, task func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ticker.C:
				task()
			}
		}
	}()
}

func (r *OutboxRelay) Shutdown(ctx context.Context) error {
	if !r.started.Load() {
		return nil
	}

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})

	go func() {
		r.wg.Wait()
		if err := r.es.Close(); err != nil {
			r.logger.Error(err, "OutboxRelay - Shutdown - r.es.Close")
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("OutboxRelay - Shutdown: %w", ctx.Err())
	}
}
