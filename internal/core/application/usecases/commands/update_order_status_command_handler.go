package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/rs/zerolog/log"
)

// UpdateOrderStatusCommandHandler handles administrative status transitions.
// The aggregate's state machine decides which edges are legal; exits from
// completed and canceled are always rejected.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition under a row-level lock and returns the
// updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.UpdateStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return nil, err
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
