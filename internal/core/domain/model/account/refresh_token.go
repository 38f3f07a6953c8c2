package account

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRefreshTokenIsNotConstructed is returned when a RefreshToken instance
// was not created through the NewRefreshToken factory method.
var ErrRefreshTokenIsNotConstructed = errors.New("RefreshToken must be created via NewRefreshToken constructor")

// RefreshToken is a stored, rotatable credential for obtaining new access
// tokens. Only the SHA-256 hash of the raw token is ever persisted.
// Tokens become unusable either by expiring or by being revoked during
// rotation; a background job purges dead records.
type RefreshToken struct {
	id        kernel.UUID
	userID    kernel.UUID
	tokenHash string
	expiresAt time.Time
	revoked   bool
	createdAt time.Time

	isConstructed bool
}

// NewRefreshToken creates an active refresh token record.
func NewRefreshToken(
	id kernel.UUID,
	userID kernel.UUID,
	tokenHash string,
	expiresAt time.Time,
	now time.Time,
) (*RefreshToken, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	if tokenHash == "" {
		return nil, errs.NewValueIsRequiredError("token hash")
	}

	return &RefreshToken{
		id:            id,
		userID:        userID,
		tokenHash:     tokenHash,
		expiresAt:     expiresAt,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreRefreshToken reconstructs a refresh token record from persistence.
func RestoreRefreshToken(
	id kernel.UUID,
	userID kernel.UUID,
	tokenHash string,
	expiresAt time.Time,
	revoked bool,
	createdAt time.Time,
) (*RefreshToken, error) {
	token, err := NewRefreshToken(id, userID, tokenHash, expiresAt, createdAt)
	if err != nil {
		return nil, err
	}
	token.revoked = revoked
	return token, nil
}

// Validate ensures the RefreshToken was created through NewRefreshToken.
func (t *RefreshToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrRefreshTokenIsNotConstructed
	}
	return nil
}

// ID returns the token record's unique identifier.
func (t *RefreshToken) ID() kernel.UUID {
	return t.id
}

// UserID returns the identifier of the user the token belongs to.
func (t *RefreshToken) UserID() kernel.UUID {
	return t.userID
}

// TokenHash returns the SHA-256 hash of the raw token.
func (t *RefreshToken) TokenHash() string {
	return t.tokenHash
}

// ExpiresAt returns the expiry time.
func (t *RefreshToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// Revoked reports whether the token was invalidated by rotation or logout.
func (t *RefreshToken) Revoked() bool {
	return t.revoked
}

// CreatedAt returns the creation timestamp.
func (t *RefreshToken) CreatedAt() time.Time {
	return t.createdAt
}

// IsUsable reports whether the token may still be exchanged at the given time.
func (t *RefreshToken) IsUsable(now time.Time) bool {
	return !t.revoked && now.Before(t.expiresAt)
}
