package employee

import (
	"context"
	"encoding/json"

	"go-roster/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event events.EmployeeLifecycleEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishLifecycle(context.Context, events.EmployeeLifecycleEvent) error {
	return nil
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishLifecycle(
	ctx context.Context,
	event events.EmployeeLifecycleEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.EmployeeLifecycleTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte("employee")},
		},
	})
}
