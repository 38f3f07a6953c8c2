package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Returns an already-exists error when the
	// email is taken.
	Add(ctx context.Context, user *account.User) error

	// Get retrieves a user by ID.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by normalized email address.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}

// RefreshTokenRepository defines the persistence contract for refresh
// token records. Tokens are stored hashed; the raw value exists only in
// the client's hands.
type RefreshTokenRepository interface {
	// Add persists a new refresh token record.
	Add(ctx context.Context, token *account.RefreshToken) error

	// GetByHash retrieves a token record by its SHA-256 hash.
	GetByHash(ctx context.Context, hash string) (*account.RefreshToken, error)

	// Revoke marks a token record as revoked (rotation or logout).
	Revoke(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes token records that expired before the given
	// time or were revoked, returning how many rows went away.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
