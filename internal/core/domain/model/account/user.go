// Package account contains the user and address entities of the food
// ordering domain. Users authenticate with email and password; addresses
// are user-owned shipping destinations that orders reference but never
// own.
package account

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered customer. The password is stored only as a bcrypt
// hash; the domain never sees the plaintext.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phoneNumber  string

	isConstructed bool
}

// NewUser creates a user with a normalized (lowercased, trimmed) email.
//
// Validation rules:
//   - id must be a valid UUID
//   - email must be non-empty and contain "@"
//   - passwordHash must be non-empty
//
// Name and phone number are optional.
func NewUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phoneNumber string,
) (*User, error) {
	u := &User{
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phoneNumber string,
) (*User, error) {
	return NewUser(id, email, passwordHash, firstName, lastName, phoneNumber)
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// PhoneNumber returns the user's phone number.
func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
