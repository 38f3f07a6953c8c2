package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/rs/zerolog/log"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Placement is one atomic unit of work: the cart is validated against the
// catalog, unit prices are snapshotted, the order total is computed during
// aggregate construction, and the order header plus all line items are
// persisted in a single transaction. If any cart entry references a
// missing menu item, nothing is persisted.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an event
// publisher for post-commit notifications.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the persisted
// order with its computed total.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if addressID := cmd.AddressID(); addressID != nil {
		if _, err := uow.AddressRepository().GetForUser(ctx, *addressID, cmd.UserID()); err != nil {
			return nil, err
		}
	}

	itemIDs := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, cartItem := range cmd.Items() {
		itemIDs = append(itemIDs, cartItem.MenuItemID)
	}

	menuItems, err := uow.MenuRepository().GetItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(cmd.Items()))
	for _, cartItem := range cmd.Items() {
		menuItem, ok := menuItems[cartItem.MenuItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", cartItem.MenuItemID.String())
		}

		lineItem, itemErr := order.NewLineItem(
			kernel.NewUUID(),
			menuItem.ID(),
			cartItem.Quantity,
			menuItem.Price(),
			cartItem.SpecialInstructions,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.AddressID(),
		cmd.PaymentMethod(),
		cmd.SpecialNotes(),
		lineItems,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publish(ctx, newOrder)
	return newOrder, nil
}

// publish emits the order-changed event after a successful commit.
// Publishing is best-effort: the order is already durable, so a broker
// failure is logged and swallowed.
func (h *PlaceOrderCommandHandler) publish(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		log.Error().Err(err).Str("order_id", aggregate.ID().String()).Msg("Failed to publish order changed event")
	}
}
