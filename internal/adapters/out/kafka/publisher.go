// Package kafka publishes order header events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mfgorder/internal/core/domain/model/orderhead"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventTypeDocumentsPrinted identifies the documents-printed event on the wire.
const EventTypeDocumentsPrinted = "mfgorder.documents-printed.v1"

// messageWriter is the slice of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.OrderEventPublisher over a Kafka topic. Messages
// are keyed by the order's composite key so all events for one order land on
// the same partition in order.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// eventEnvelope is the wire format wrapping every published event.
type eventEnvelope struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt string      `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// NewPublisher creates a Publisher writing to the given topic on the broker.
func NewPublisher(kafkaHost string, topic string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkaHost),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}

	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// PublishDocumentsPrinted implements ports.OrderEventPublisher.
func (p *Publisher) PublishDocumentsPrinted(ctx context.Context, event orderhead.DocumentsPrintedEvent) error {
	envelope := eventEnvelope{
		EventID:    uuid.New().String(),
		EventType:  EventTypeDocumentsPrinted,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    event,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal documents-printed event: %w", err)
	}

	key := fmt.Sprintf("%d/%s/%s/%s",
		event.Company, event.Facility, event.ProductCode, event.OrderNumber)

	message := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}

	if err = p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish documents-printed event: %w", err)
	}

	p.logger.DebugContext(ctx, "Published documents-printed event",
		"key", key, "eventId", envelope.EventID)

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
