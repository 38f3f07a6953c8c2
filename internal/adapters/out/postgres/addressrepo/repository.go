package addressrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
// Every operation is scoped to the owning user, so a foreign address
// behaves exactly like a missing one.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add saves a new address.
func (r *GormAddressRepository) Add(ctx context.Context, address *account.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := fromDomain(address)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing address.
func (r *GormAddressRepository) Update(ctx context.Context, address *account.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := fromDomain(address)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
		Updates(map[string]any{
			"street_address": dto.StreetAddress,
			"apartment":      dto.Apartment,
			"city":           dto.City,
			"phone":          dto.Phone,
			"is_default":     dto.IsDefault,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", address.ID().String())
	}

	return nil
}

// Delete removes an address owned by the given user.
func (r *GormAddressRepository) Delete(ctx context.Context, id, userID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.Bytes(), userID.Bytes()).
		Delete(&AddressDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}

	return nil
}

// GetForUser retrieves an address by ID scoped to its owning user.
func (r *GormAddressRepository) GetForUser(ctx context.Context, id, userID kernel.UUID) (*account.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND user_id = ?", id.Bytes(), userID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
