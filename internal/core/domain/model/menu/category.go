// Package menu contains the catalog entities of the food ordering domain:
// categories and menu items. The catalog is read-mostly; the order
// subsystem treats menu items as immutable price sources and only ever
// captures snapshots of them.
package menu

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items for browsing ("Pizza", "Pasta", ...).
type Category struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCategory creates a category with a validated identifier and a
// non-empty name.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id kernel.UUID, name string) (*Category, error) {
	return NewCategory(id, name)
}

// Validate ensures the Category was created through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	c.name = name
	return nil
}
