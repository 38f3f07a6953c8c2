package menu

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not
// created through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a catalog entry with a fixed-point price.
//
// From the order subsystem's viewpoint an Item is immutable: orders copy
// its price into line item snapshots at creation time, so later catalog
// changes never retroactively affect past orders. Items that have been
// ordered cannot be deleted (enforced by a referential constraint in the
// schema).
type Item struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	categoryID  kernel.UUID
	imageURL    string

	isConstructed bool
}

// NewItem creates a catalog item.
//
// Validation rules:
//   - id and categoryID must be valid UUIDs
//   - name must not be empty
//   - price must be positive
func NewItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	categoryID kernel.UUID,
	imageURL string,
) (*Item, error) {
	item := &Item{
		description:   description,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a catalog item from persistence.
func RestoreItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	categoryID kernel.UUID,
	imageURL string,
) (*Item, error) {
	return NewItem(id, name, description, price, categoryID, imageURL)
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// Price returns the current catalog price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// CategoryID returns the owning category's identifier.
func (i *Item) CategoryID() kernel.UUID {
	return i.categoryID
}

// ImageURL returns the item's image reference.
func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price.String()))
	}
	i.price = price
	return nil
}

func (i *Item) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("category id", err)
	}
	i.categoryID = categoryID
	return nil
}
