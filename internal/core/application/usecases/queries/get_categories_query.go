package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery retrieves all menu categories.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a parameterless category listing query.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// CategoryResponse is the read model of one menu category.
type CategoryResponse struct {
	ID   kernel.UUID
	Name string
}
