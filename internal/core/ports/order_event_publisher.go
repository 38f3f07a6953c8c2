package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream consumers that an order changed.
// Implementations publish after the owning transaction commits; a publish
// failure must never roll back the already-committed business operation.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event describing the order's current state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
