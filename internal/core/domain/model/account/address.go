package account

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a user-owned shipping destination. Orders hold a non-owning,
// nullable reference to an address: deleting the address empties the
// reference on past orders but never deletes the orders themselves.
//
// isDefault is a soft UI convention, not a hard uniqueness constraint.
// A user may end up with several defaults and listings simply sort the
// flagged ones first.
type Address struct {
	id            kernel.UUID
	userID        kernel.UUID
	streetAddress string
	apartment     string
	city          string
	phone         string
	isDefault     bool

	isConstructed bool
}

// NewAddress creates an address owned by the given user.
//
// Validation rules:
//   - id and userID must be valid UUIDs
//   - streetAddress, city and phone must be non-empty
//
// Apartment is optional.
func NewAddress(
	id kernel.UUID,
	userID kernel.UUID,
	streetAddress string,
	apartment string,
	city string,
	phone string,
	isDefault bool,
) (*Address, error) {
	a := &Address{
		apartment:     apartment,
		isDefault:     isDefault,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setStreetAddress(streetAddress),
		a.setCity(city),
		a.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(
	id kernel.UUID,
	userID kernel.UUID,
	streetAddress string,
	apartment string,
	city string,
	phone string,
	isDefault bool,
) (*Address, error) {
	return NewAddress(id, userID, streetAddress, apartment, city, phone, isDefault)
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Update replaces the mutable address details. Ownership and identity
// never change.
func (a *Address) Update(streetAddress, apartment, city, phone string, isDefault bool) error {
	if err := errors.Join(
		a.setStreetAddress(streetAddress),
		a.setCity(city),
		a.setPhone(phone),
	); err != nil {
		return err
	}

	a.apartment = apartment
	a.isDefault = isDefault
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// UserID returns the owning user's identifier.
func (a *Address) UserID() kernel.UUID {
	return a.userID
}

// StreetAddress returns the street line.
func (a *Address) StreetAddress() string {
	return a.streetAddress
}

// Apartment returns the optional apartment line.
func (a *Address) Apartment() string {
	return a.apartment
}

// City returns the city.
func (a *Address) City() string {
	return a.city
}

// Phone returns the contact phone for deliveries to this address.
func (a *Address) Phone() string {
	return a.phone
}

// IsDefault reports whether the user marked this address as their default.
func (a *Address) IsDefault() bool {
	return a.isDefault
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	a.userID = userID
	return nil
}

func (a *Address) setStreetAddress(streetAddress string) error {
	if streetAddress == "" {
		return errs.NewValueIsRequiredError("street address")
	}
	a.streetAddress = streetAddress
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
