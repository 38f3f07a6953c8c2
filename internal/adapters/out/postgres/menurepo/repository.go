package menurepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM catalog repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// AddCategory saves a new category.
func (r *GormMenuRepository) AddCategory(ctx context.Context, category *menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddItem saves a new catalog item.
func (r *GormMenuRepository) AddItem(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetItem retrieves a catalog item by ID.
func (r *GormMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetItemsByIDs retrieves the catalog items for the given IDs. Missing IDs
// are simply absent from the returned map.
func (r *GormMenuRepository) GetItemsByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*menu.Item, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]*menu.Item, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID()] = item
	}

	return items, nil
}
