package commands

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// CreateAddressCommandHandler handles address book additions.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address creation.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle creates the address and returns it.
func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*account.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	address, err := account.NewAddress(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.StreetAddress(),
		cmd.Apartment(),
		cmd.City(),
		cmd.Phone(),
		cmd.IsDefault(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddressRepository().Add(ctx, address); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return address, nil
}
