package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves the profile of the authenticated user.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a user profile query.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the user whose profile is read.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

// UserResponse is the read model of a user profile. The password hash
// never leaves the persistence layer.
type UserResponse struct {
	ID          kernel.UUID
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
}
