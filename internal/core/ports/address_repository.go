package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for shipping
// addresses. All reads and mutations are scoped to the owning user;
// a foreign address is indistinguishable from a missing one.
type AddressRepository interface {
	// Add persists a new address.
	Add(ctx context.Context, address *account.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, address *account.Address) error

	// Delete removes an address owned by the given user. Orders that
	// referenced it keep existing with an emptied address reference.
	// Returns not-found when the address is missing or foreign.
	Delete(ctx context.Context, id kernel.UUID, userID kernel.UUID) error

	// GetForUser retrieves an address by ID scoped to its owning user.
	GetForUser(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*account.Address, error)
}
