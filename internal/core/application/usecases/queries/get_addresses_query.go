package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

// GetAddressesQuery retrieves the user's address book, default entries
// first.
type GetAddressesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates an address book listing query.
func NewGetAddressesQuery(userID kernel.UUID) (GetAddressesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetAddressesQuery{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}

	return GetAddressesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// UserID returns the user whose addresses are listed.
func (q GetAddressesQuery) UserID() kernel.UUID {
	return q.userID
}

// AddressResponse is the read model of one address book entry.
type AddressResponse struct {
	ID            kernel.UUID
	StreetAddress string
	Apartment     string
	City          string
	Phone         string
	IsDefault     bool
}
