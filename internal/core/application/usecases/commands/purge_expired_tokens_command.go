package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand triggers removal of refresh token records that
// expired before the given cutoff or were revoked. Issued by the scheduled
// cleanup job.
type PurgeExpiredTokensCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a command to purge stale refresh
// tokens. The cutoff must be a concrete point in time.
func NewPurgeExpiredTokensCommand(before time.Time) (PurgeExpiredTokensCommand, error) {
	if before.IsZero() {
		return PurgeExpiredTokensCommand{}, errs.NewValueIsRequiredError("before")
	}

	return PurgeExpiredTokensCommand{
		before: before,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}

// Before returns the expiry cutoff.
func (c PurgeExpiredTokensCommand) Before() time.Time {
	return c.before
}
