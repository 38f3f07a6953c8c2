// Package ports defines repository and outbound interfaces for the food
// ordering domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items form one composition: Add persists both in
// the ambient transaction, and retrieval always rehydrates the full
// aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its line
	// items. Partial writes must be impossible: either the header and
	// every item land, or nothing does.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's header fields
	// (status, total, cancellation state). Line items are immutable after
	// creation and are never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUser retrieves an order by ID scoped to its owning user.
	// An order that exists but belongs to another user is reported as
	// not found, so callers cannot probe for foreign orders.
	GetForUser(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*order.Order, error)

	// GetForUserLocked behaves like GetForUser but acquires a row-level
	// lock on the order header, serializing concurrent mutations of the
	// same order. Must be called inside an active transaction.
	GetForUserLocked(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*order.Order, error)
}
