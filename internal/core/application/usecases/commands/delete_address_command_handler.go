package commands

import (
	"context"
)

// DeleteAddressCommandHandler handles address removal. Orders that
// referenced the address keep existing with an emptied reference; the
// foreign key handles that at the storage level.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the address. A missing or foreign address yields a
// not-found error.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AddressRepository().Delete(ctx, cmd.AddressID(), cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
