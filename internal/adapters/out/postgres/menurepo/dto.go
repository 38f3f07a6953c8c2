// Package menurepo provides data transfer objects and mapping functions
// for catalog persistence.
package menurepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDTO represents the database structure for menu categories.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "menu_categories"
}

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	ImageURL    string          `gorm:"type:text"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID().Bytes(),
		Name: category.Name(),
	}
}

func itemFromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		CategoryID:  item.CategoryID().Bytes(),
		ImageURL:    item.ImageURL(),
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Description, dto.Price, categoryID, dto.ImageURL)
}
