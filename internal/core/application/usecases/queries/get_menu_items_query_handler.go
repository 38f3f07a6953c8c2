package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler reads the catalog from the database.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for catalog queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the query. Items are sorted by category name, then by
// item name, matching how a menu reads.
func (h GetMenuItemsQueryHandler) Handle(ctx context.Context, query GetMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			mi.id,
			mi.name,
			mi.description,
			mi.price,
			mi.image_url,
			c.id,
			c.name
		FROM menu_items mi
		JOIN menu_categories c ON c.id = mi.category_id
	`
	args := make([]any, 0, 1)
	if query.CategoryName() != "" {
		sqlText += ` WHERE LOWER(c.name) = LOWER(?)`
		args = append(args, query.CategoryName())
	}
	sqlText += ` ORDER BY c.name, mi.name`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			item       MenuItemResponse
			id         uuid.UUID
			categoryID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&categoryID,
			&item.CategoryName,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		catID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.CategoryID = catID

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
