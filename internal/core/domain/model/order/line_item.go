package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem binds a menu item snapshot to an order.
//
// The price is captured from the catalog at order-creation time and is
// never recomputed, so later catalog price changes do not affect the item.
// Line items are immutable after creation and exist only as part of their
// parent order.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// menuItemID references the catalog entry this item was created from
	menuItemID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// price is the unit price snapshot taken at order-creation time
	price decimal.Decimal

	// specialInstructions carries optional free-text preparation notes
	specialInstructions string

	// isConstructed ensures the line item was created via NewLineItem
	isConstructed bool
}

// NewLineItem creates a line item with a frozen unit price snapshot.
//
// Validation rules:
//   - id and menuItemID must be valid UUIDs
//   - quantity must be greater than 0
//   - price must not be negative
//
// Returns a validation error if any rule is violated.
func NewLineItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	price decimal.Decimal,
	specialInstructions string,
) (*LineItem, error) {
	item := &LineItem{
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence.
// The same validation rules as NewLineItem apply, ensuring stored data
// still satisfies the domain invariants.
func RestoreLineItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	price decimal.Decimal,
	specialInstructions string,
) (*LineItem, error) {
	return NewLineItem(id, menuItemID, quantity, price, specialInstructions)
}

// Validate ensures the LineItem was properly constructed through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// MenuItemID returns the referenced catalog entry's identifier.
func (li *LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Price returns the unit price snapshot.
func (li *LineItem) Price() decimal.Decimal {
	return li.price
}

// SpecialInstructions returns the optional preparation notes.
func (li *LineItem) SpecialInstructions() string {
	return li.specialInstructions
}

// Subtotal returns price multiplied by quantity.
// It is a pure derived value and is never persisted.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.price.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", err)
	}
	li.menuItemID = menuItemID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	li.price = price
	return nil
}
