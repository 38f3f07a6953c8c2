package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
)

// PlaceOrderCartItem is one requested cart entry: a menu item reference,
// a quantity and optional preparation instructions. The price is not part
// of the request; it is snapshotted from the catalog inside the handler.
type PlaceOrderCartItem struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// PlaceOrderCommand represents a request to place a new food order from a
// cart payload. The authenticated user is an explicit field, never ambient
// state.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	addressID     *kernel.UUID
	paymentMethod order.PaymentMethod
	specialNotes  string
	items         []PlaceOrderCartItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates identifiers, the payment method, and that the cart holds at
// least one entry with a positive quantity. Returns an error if any
// validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	addressID *kernel.UUID,
	paymentMethod order.PaymentMethod,
	specialNotes string,
	items []PlaceOrderCartItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		specialNotes: specialNotes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setAddressID(addressID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the authenticated user placing the order.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// AddressID returns the optional shipping address reference.
func (c PlaceOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

// PaymentMethod returns the selected payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// SpecialNotes returns the optional order-level notes.
func (c PlaceOrderCommand) SpecialNotes() string {
	return c.specialNotes
}

// Items returns the requested cart entries.
func (c PlaceOrderCommand) Items() []PlaceOrderCartItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setAddressID(addressID *kernel.UUID) error {
	if addressID == nil {
		return nil
	}
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address id", err)
	}
	c.addressID = addressID
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderCartItem) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menu item id", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = items
	return nil
}
