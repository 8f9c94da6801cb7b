package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Highlight-Generator/pkg/kafka/consumer"
	"github.com/segmentio/kafka-go"
)

// EventConsumer reads generation requests; offsets are committed explicitly.
type EventConsumer struct {
	*consumer.Consumer
}

func NewEventConsumer(consumer *consumer.Consumer) *EventConsumer {
	return &EventConsumer{consumer}
}

// ReadEvent blocks until the next request arrives. Tombstones (empty values) carry
// no request and are committed and skipped here.
func (ec *EventConsumer) ReadEvent(ctx context.Context) (kafka.Message, error) {
	for {
		msg, err := ec.Reader.FetchMessage(ctx)
		if err != nil {
			return kafka.Message{}, fmt.Errorf("EventConsumer - ReadEvent - ec.Reader.FetchMessage: %w", err)
		}

		if !isTombstone(msg) {
			return msg, nil
		}

		err = ec.Reader.CommitMessages(ctx, msg)
		if err != nil {
			return kafka.Message{}, fmt.Errorf("EventConsumer - ReadEvent - ec.Reader.CommitMessages: %w", err)
		}
	}
}

func (ec *EventConsumer) CommitEvent(ctx context.Context, event kafka.Message) error {
	err := ec.Reader.CommitMessages(ctx, event)
	if err != nil {
		return fmt.Errorf("EventConsumer - CommitEvent - ec.Reader.CommitMessages: %w", err)
	}

	return nil
}

func (ec *EventConsumer) Close() error {
	err := ec.Consumer.Close()
	if err != nil {
		return fmt.Errorf("EventConsumer - Close: %w", err)
	}

	return nil
}

// HighlightID returns the highlight id header set by EventProducer, or "".
func HighlightID(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == headerHighlightID {
			return string(h.Value)
		}
	}

	return ""
}

func isTombstone(msg kafka.Message) bool {
	return len(msg.Value) == 0
}
