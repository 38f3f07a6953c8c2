package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new user account.
// The password travels through the command in plaintext and is hashed by
// the handler before anything touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email       string
	password    string
	firstName   string
	lastName    string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. Name and phone
// number are optional.
func NewRegisterUserCommand(
	email string,
	password string,
	firstName string,
	lastName string,
	phoneNumber string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		firstName:   firstName,
		lastName:    lastName,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the requested email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the user's phone number.
func (c RegisterUserCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < 8 {
		return errs.NewValueIsInvalidError("password")
	}
	c.password = password
	return nil
}
