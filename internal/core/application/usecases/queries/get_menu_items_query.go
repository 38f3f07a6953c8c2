package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves the catalog, optionally narrowed to one
// category by case-insensitive name match.
type GetMenuItemsQuery struct {
	categoryName string

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a catalog listing query. An empty
// categoryName means the whole catalog.
func NewGetMenuItemsQuery(categoryName string) GetMenuItemsQuery {
	return GetMenuItemsQuery{
		categoryName: categoryName,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// CategoryName returns the optional category filter.
func (q GetMenuItemsQuery) CategoryName() string {
	return q.categoryName
}

// MenuItemResponse is the read model of one catalog item.
type MenuItemResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	CategoryID   kernel.UUID
	CategoryName string
	ImageURL     string
}
