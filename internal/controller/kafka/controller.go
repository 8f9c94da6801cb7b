package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	infrakafka "github.com/andreyxaxa/Highlight-Generator/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// EventReader is the consumer side of the generation topic.
type EventReader interface {
	ReadEvent(ctx context.Context) (kafka.Message, error)
	CommitEvent(ctx context.Context, event kafka.Message) error
	Close() error
}

// KafkaController feeds generation requests from Kafka to a pool of workers.
type KafkaController struct {
	gen    usecase.GenerationUseCase
	ec     EventReader
	logger logger.Interface

	commitTimeout  time.Duration
	processTimeout time.Duration

	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started atomic.Bool
}

func New(
	gen usecase.GenerationUseCase,
	ec EventReader,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	workers int,
) *KafkaController {
	return &KafkaController{
		gen:            gen,
		ec:             ec,
		logger:         l,
		commitTimeout:  commitTimeout,
		processTimeout: processTimeout,
		workers:        max(workers, 1),
	}
}

func (c *KafkaController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("KafkaController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	tasks := make(chan kafka.Message, c.workers*2)

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(tasks)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(tasks)

		for {
			select {
			case <-c.ctx.Done():
				return
			default:
				event, err := c.ec.ReadEvent(c.ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						c.logger.Error(err, "KafkaController - Start - c.ec.ReadEvent")
					}
					continue
				}

				select {
				case tasks <- event:
				case <-c.ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

// handle runs one request. Every outcome is final for the message; the worker
// records failures on the highlight itself.
func (c *KafkaController) handle(ctx context.Context, event kafka.Message) error {
	var req dto.GenerationRequest
	err := json.Unmarshal(event.Value, &req)
	if err != nil {
		return fmt.Errorf("KafkaController - handle - json.Unmarshal: %w", err)
	}

	path, err := c.gen.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("KafkaController - handle - c.gen.Generate: %w", err)
	}

	c.logger.Debug("highlight %s published to %s", req.HighlightID, path)

	return nil
}

// process recovers a panicking handler so that the worker survives it.
func (c *KafkaController) process(event kafka.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("KafkaController - process - panic: %v", r)
		}
	}()

	processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
	defer processCancel()

	return c.handle(processCtx, event)
}

// worker commits every message it took, whatever the outcome. kafka-go commits
// offsets per partition, so leaving one message uncommitted would not bring it
// back once a later offset is committed.
func (c *KafkaController) worker(tasks <-chan kafka.Message) {
	defer c.wg.Done()

	for event := range tasks {
		err := c.process(event)
		if err != nil {
			c.logger.Error(err, "KafkaController - worker - c.process: highlight=%s offset=%d", infrakafka.HighlightID(event), event.Offset)
		}

		commitCtx, commitCancel := context.WithTimeout(context.WithoutCancel(c.ctx), c.commitTimeout)
		err = c.ec.CommitEvent(commitCtx, event)
		commitCancel()
		if err != nil {
			c.logger.Error(err, "KafkaController - worker - c.ec.CommitEvent")
		}
	}
}

func (c *KafkaController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		if err := c.ec.Close(); err != nil {
			c.logger.Error(err, "KafkaController - Shutdown - c.ec.Close")
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("KafkaController - Shutdown: %w", ctx.Err())
	}
}
