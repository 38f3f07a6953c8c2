package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to add an address to the
// user's address book.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	streetAddress string
	apartment     string
	city          string
	phone         string
	isDefault     bool

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates an address creation command. Apartment
// is optional; field-level validation is deferred to the aggregate.
func NewCreateAddressCommand(
	userID kernel.UUID,
	streetAddress string,
	apartment string,
	city string,
	phone string,
	isDefault bool,
) (CreateAddressCommand, error) {
	cmd := CreateAddressCommand{
		streetAddress: streetAddress,
		apartment:     apartment,
		city:          city,
		phone:         phone,
		isDefault:     isDefault,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CreateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (c CreateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

// StreetAddress returns the street line.
func (c CreateAddressCommand) StreetAddress() string {
	return c.streetAddress
}

// Apartment returns the optional apartment line.
func (c CreateAddressCommand) Apartment() string {
	return c.apartment
}

// City returns the city.
func (c CreateAddressCommand) City() string {
	return c.city
}

// Phone returns the contact phone.
func (c CreateAddressCommand) Phone() string {
	return c.phone
}

// IsDefault reports whether the new address should be flagged as default.
func (c CreateAddressCommand) IsDefault() bool {
	return c.isDefault
}

func (c *CreateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	c.userID = userID
	return nil
}
