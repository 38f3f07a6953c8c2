package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/rs/zerolog/log"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
//
// The order row is loaded under a row-level lock, so two simultaneous
// cancel requests for the same order serialize: the first one wins, the
// second observes the already-canceled status and gets the
// only-pending-orders reason back.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation. Returns the updated order, a
// not-found error when the order is missing or foreign, or an
// invalid-state error when the order is no longer pending.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUserLocked(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if !aggregate.Cancel(time.Now().UTC()) {
		return nil, errs.NewInvalidStateError("only pending orders can be canceled")
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
			log.Error().Err(err).Str("order_id", aggregate.ID().String()).Msg("Failed to publish order changed event")
		}
	}

	return aggregate, nil
}
