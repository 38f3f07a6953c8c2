package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to replace the details of an
// existing address owned by the user.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID     kernel.UUID
	userID        kernel.UUID
	streetAddress string
	apartment     string
	city          string
	phone         string
	isDefault     bool

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates an address update command.
func NewUpdateAddressCommand(
	addressID kernel.UUID,
	userID kernel.UUID,
	streetAddress string,
	apartment string,
	city string,
	phone string,
	isDefault bool,
) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		streetAddress: streetAddress,
		apartment:     apartment,
		city:          city,
		phone:         phone,
		isDefault:     isDefault,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setUserID(userID),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// AddressID returns the address to update.
func (c UpdateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// UserID returns the authenticated user requesting the update.
func (c UpdateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

// StreetAddress returns the new street line.
func (c UpdateAddressCommand) StreetAddress() string {
	return c.streetAddress
}

// Apartment returns the new optional apartment line.
func (c UpdateAddressCommand) Apartment() string {
	return c.apartment
}

// City returns the new city.
func (c UpdateAddressCommand) City() string {
	return c.city
}

// Phone returns the new contact phone.
func (c UpdateAddressCommand) Phone() string {
	return c.phone
}

// IsDefault reports whether the address should be flagged as default.
func (c UpdateAddressCommand) IsDefault() bool {
	return c.isDefault
}

func (c *UpdateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address id", err)
	}
	c.addressID = addressID
	return nil
}

func (c *UpdateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	c.userID = userID
	return nil
}
