package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := newPendingOrder(t, userID)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), userID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUserLocked", mock.Anything, aggregate.ID(), userID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Preparing, updated.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DisallowedTransition(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := newPendingOrder(t, userID)

	// pending -> completed skips the intermediate states
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), userID, order.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUserLocked", mock.Anything, aggregate.ID(), userID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, order.Pending, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := newPendingOrder(t, userID)
	require.True(t, aggregate.Cancel(time.Now().UTC()))

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), userID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUserLocked", mock.Anything, aggregate.ID(), userID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTargetStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}
