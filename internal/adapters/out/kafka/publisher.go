// Package kafka provides the Kafka-backed implementation of the order
// event publisher. Publishing is best-effort and happens after the owning
// transaction commits; with no brokers configured the publisher degrades
// to a no-op so local development does not need a running cluster.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire payload for order lifecycle notifications.
type orderChangedEvent struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderEventPublisher publishes order change events to a Kafka topic,
// keyed by order ID so all events of one order land in the same
// partition.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher for the given brokers (CSV)
// and topic. Returns nil when no brokers are configured; command handlers
// treat a nil publisher as "publishing disabled".
func NewOrderEventPublisher(brokersCSV, topic string) *OrderEventPublisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 || topic == "" {
		return nil
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderChanged emits an event describing the order's current state.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event := orderChangedEvent{
		OrderID:   aggregate.ID().String(),
		UserID:    aggregate.UserID().String(),
		Status:    aggregate.Status().String(),
		Total:     aggregate.Total().StringFixed(2),
		IsActive:  aggregate.IsActive(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
