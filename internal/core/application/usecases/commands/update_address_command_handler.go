package commands

import (
	"context"

	"foodorder/internal/core/domain/model/account"
)

// UpdateAddressCommandHandler handles address book edits. Ownership is
// enforced by the user-scoped lookup, so a foreign address behaves as if
// it did not exist.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle applies the update and returns the modified address.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*account.Address, error) {
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

	addressRepo := uow.AddressRepository()

	address, err := addressRepo.GetForUser(ctx, cmd.AddressID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = address.Update(
		cmd.StreetAddress(),
		cmd.Apartment(),
		cmd.City(),
		cmd.Phone(),
		cmd.IsDefault(),
	); err != nil {
		return nil, err
	}

	if err = addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return address, nil
}
