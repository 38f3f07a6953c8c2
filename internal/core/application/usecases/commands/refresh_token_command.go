package commands

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand represents a request to exchange a refresh token for
// a new token pair.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

// NewRefreshTokenCommand creates a token refresh command.
func NewRefreshTokenCommand(refreshToken string) (RefreshTokenCommand, error) {
	cmd := RefreshTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRefreshToken(refreshToken); err != nil {
		return RefreshTokenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

// RefreshToken returns the raw refresh token submitted by the client.
func (c RefreshTokenCommand) RefreshToken() string {
	return c.refreshToken
}

func (c *RefreshTokenCommand) setRefreshToken(refreshToken string) error {
	if refreshToken == "" {
		return errs.NewValueIsRequiredError("refresh token")
	}
	c.refreshToken = refreshToken
	return nil
}
