package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a request to exchange credentials for a token pair.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command.
func NewLoginCommand(email string, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the submitted email address.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the submitted plaintext password.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
