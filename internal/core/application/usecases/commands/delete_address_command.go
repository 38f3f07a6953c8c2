package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove an address from the
// user's address book.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates an address deletion command.
func NewDeleteAddressCommand(addressID kernel.UUID, userID kernel.UUID) (DeleteAddressCommand, error) {
	cmd := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setUserID(userID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// AddressID returns the address to delete.
func (c DeleteAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// UserID returns the authenticated user requesting the deletion.
func (c DeleteAddressCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address id", err)
	}
	c.addressID = addressID
	return nil
}

func (c *DeleteAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	c.userID = userID
	return nil
}
