package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when an order is created without
	// any line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")
)

// Order is the aggregate root of the ordering domain. It owns its line
// items by composition, derives its total from them, and controls the
// status lifecycle.
//
// Order maintains these invariants:
//   - The owning user never changes after creation
//   - Total always equals the sum of line item subtotals as of the last
//     recomputation, computed with fixed-point decimal arithmetic
//   - Status transitions follow the whitelist in the Status state machine
//   - canceledAt is set exactly when the order enters the canceled state,
//     and isActive turns false at the same moment
//
// The total is computed inside NewOrder, in the same construction path
// that attaches the line items, so a freshly created order can be
// persisted together with its items and its total in one transaction.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the owning user's ID (immutable after creation)
	userID kernel.UUID

	// addressID is the optional shipping address reference
	addressID *kernel.UUID

	// paymentMethod is how the order will be paid
	paymentMethod PaymentMethod

	// specialNotes carries optional free-text notes for the whole order
	specialNotes string

	// total is the derived sum of line item subtotals
	total decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// createdAt and updatedAt are lifecycle timestamps
	createdAt time.Time
	updatedAt time.Time

	// canceledAt is set only on transition to Canceled
	canceledAt *time.Time

	// isActive is false once the order is canceled
	isActive bool

	// items are the owned line items (composition)
	items []*LineItem

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in pending status with the given line items
// and computes its total in the same construction path.
//
// Validation rules:
//   - id and userID must be valid UUIDs
//   - addressID, when present, must be a valid UUID
//   - paymentMethod must be a supported method
//   - at least one line item is required, and every item must be valid
//
// Returns a validation error if any rule is violated; items are never
// partially attached.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID *kernel.UUID,
	paymentMethod PaymentMethod,
	specialNotes string,
	items []*LineItem,
	now time.Time,
) (*Order, error) {
	o := &Order{
		specialNotes:  specialNotes,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(addressID),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.CalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing
// derived state. The stored total is kept as-is so the aggregate reflects
// exactly what was persisted.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID *kernel.UUID,
	paymentMethod PaymentMethod,
	specialNotes string,
	total decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	canceledAt *time.Time,
	isActive bool,
	items []*LineItem,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		specialNotes:  specialNotes,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		canceledAt:    canceledAt,
		isActive:      isActive,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(addressID),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// AddressID returns the shipping address reference.
// Returns nil if no address is attached.
func (o *Order) AddressID() *kernel.UUID {
	return o.addressID
}

// PaymentMethod returns the selected payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// SpecialNotes returns the optional order-level notes.
func (o *Order) SpecialNotes() string {
	return o.specialNotes
}

// Total returns the stored order total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanceledAt returns the cancellation timestamp.
// Returns nil unless the order has been canceled.
func (o *Order) CanceledAt() *time.Time {
	return o.canceledAt
}

// IsActive reports whether the order is still active (not canceled).
func (o *Order) IsActive() bool {
	return o.isActive
}

// Items returns the owned line items.
func (o *Order) Items() []*LineItem {
	return o.items
}

// CanCancel reports whether the owner may still cancel the order.
// Only pending orders can be canceled.
func (o *Order) CanCancel() bool {
	return o.status == Pending
}

// CalculateTotal recomputes the order total as the exact decimal sum of
// price multiplied by quantity over all owned line items, stores it, and
// returns the result. An order with zero line items yields 0.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
	return total
}

// Cancel transitions the order from pending to canceled.
//
// On success it sets isActive to false, records the cancellation timestamp
// and returns true. For any non-pending status it performs no mutation and
// returns false: a rejected-but-legal request, not an error.
func (o *Order) Cancel(now time.Time) bool {
	if o.status != Pending {
		return false
	}

	o.status = Canceled
	o.isActive = false
	o.canceledAt = &now
	o.updatedAt = now
	return true
}

// UpdateStatus performs an administrative status transition through the
// state machine whitelist, rejecting exits from terminal states.
//
// Transitioning to canceled through this path stamps the cancellation
// timestamp and clears the active flag, the same as Cancel.
func (o *Order) UpdateStatus(newStatus Status, now time.Time) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now
	if next == Canceled {
		o.isActive = false
		o.canceledAt = &now
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setAddressID(addressID *kernel.UUID) error {
	if addressID == nil {
		return nil
	}
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address id", err)
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
