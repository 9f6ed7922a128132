// Package kafka publishes depot domain events as JSON messages on a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"depot/internal/core/domain/model/depot"

	kafkago "github.com/segmentio/kafka-go"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "depot.events"

// ErrNoBrokers is returned when the publisher is created without broker addresses.
var ErrNoBrokers = errors.New("kafka: at least one broker is required")

// MessageWriter is the part of kafkago.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// EventMessage is the wire format of a depot event.
type EventMessage struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	DriverID   string    `json:"driverId"`
	VehicleID  string    `json:"vehicleId,omitempty"`
	OrderID    string    `json:"orderId,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEventMessage converts a domain event to its wire format.
func NewEventMessage(e depot.Event) EventMessage {
	msg := EventMessage{
		ID:         e.ID.String(),
		Type:       string(e.Type),
		DriverID:   e.DriverID.String(),
		OrderID:    e.OrderID,
		Message:    e.Message,
		OccurredAt: e.OccurredAt,
	}
	if e.VehicleID.Validate() == nil {
		msg.VehicleID = e.VehicleID.String()
	}
	return msg
}

// Key partitions events per order, or per driver for vehicle assignments.
// Commits are published one at a time in commit order, so consumers of a
// partition see the events of one order in the order they happened.
func (m EventMessage) Key() string {
	if m.OrderID != "" {
		return "order:" + m.OrderID
	}
	return "driver:" + m.DriverID
}

// Publisher implements ports.EventPublisher on a kafka-go Writer.
type Publisher struct {
	writer MessageWriter
}

// NewPublisher creates a publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if topic == "" {
		topic = DefaultTopic
	}

	return NewPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}), nil
}

// NewPublisherWithWriter creates a publisher on an existing writer.
func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

// Publish writes every event in one batch.
func (p *Publisher) Publish(ctx context.Context, events ...depot.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		wire := NewEventMessage(e)
		data, err := json.Marshal(wire)
		if err != nil {
			return fmt.Errorf("kafka: marshal event %s: %w", wire.ID, err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(wire.Key()),
			Value: data,
			Headers: []kafkago.Header{
				{Key: "type", Value: []byte(wire.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write %d events: %w", len(msgs), err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// EnsureTopic creates topic on the first broker when it does not exist yet.
func EnsureTopic(ctx context.Context, broker, topic string, partitions int) error {
	conn, err := kafkago.DialContext(ctx, "tcp", broker)
	if err != nil {
		return fmt.Errorf("kafka: dial %s: %w", broker, err)
	}
	defer conn.Close()

	return conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	})
}
