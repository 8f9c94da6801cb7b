package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventID     = "event_id"
	headerHighlightID = "highlight_id"
)

// EventProducer publishes outbox events as generation requests.
type EventProducer struct {
	*producer.Producer
	topic string
}

func NewEventProducer(producer *producer.Producer, topic string) *EventProducer {
	return &EventProducer{
		Producer: producer,
		topic:    topic,
	}
}

func (ep *EventProducer) SendEvents(ctx context.Context, events []*entity.OutboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := toMessages(ep.topic, events)

	err := ep.Writer.WriteMessages(ctx, msgs...)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}

// toMessages keys messages by highlight so that retries of one highlight stay
// on one partition.
func toMessages(topic string, events []*entity.OutboxEvent) []kafka.Message {
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msgs = append(msgs, kafka.Message{
			Topic: topic,
			Key:   []byte(event.AggregateID.String()),
			Value: event.Payload,
			Headers: []kafka.Header{
				{Key: headerEventID, Value: []byte(event.ID.String())},
				{Key: headerHighlightID, Value: []byte(event.AggregateID.String())},
			},
		})
	}

	return msgs
}
