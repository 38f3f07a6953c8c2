package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the catalog.
// The ordering core reads menu items to snapshot their prices; writes
// exist for catalog seeding and administration.
type MenuRepository interface {
	// AddCategory persists a new category.
	AddCategory(ctx context.Context, category *menu.Category) error

	// AddItem persists a new catalog item.
	AddItem(ctx context.Context, item *menu.Item) error

	// GetItem retrieves a catalog item by ID.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetItemsByIDs retrieves the catalog items for the given IDs.
	// The result may be shorter than the input when some IDs do not
	// exist; callers detect missing references by comparing lengths or
	// probing the returned map.
	GetItemsByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Item, error)
}
