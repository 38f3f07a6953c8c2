package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoriesQueryHandler reads menu categories from the database.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category queries.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query. Categories are sorted by name.
func (h GetCategoriesQueryHandler) Handle(ctx context.Context, query GetCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM menu_categories
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var (
			category CategoryResponse
			id       uuid.UUID
		)

		if err = rows.Scan(&id, &category.Name); err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		category.ID = categoryID

		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
