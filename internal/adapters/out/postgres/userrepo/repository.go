package userrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user. A duplicate email surfaces as an already-exists
// error. Requires the connection to be opened with TranslateError so the
// unique violation arrives as gorm.ErrDuplicatedKey.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("email", user.Email())
		}
		return err
	}

	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetByEmail retrieves a user by normalized email address.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormRefreshTokenRepository implements RefreshTokenRepository using GORM.
type GormRefreshTokenRepository struct {
	db *gorm.DB
}

// NewGormRefreshTokenRepository creates a new GORM refresh token
// repository.
func NewGormRefreshTokenRepository(db *gorm.DB) *GormRefreshTokenRepository {
	return &GormRefreshTokenRepository{db: db}
}

// Add saves a new refresh token record.
func (r *GormRefreshTokenRepository) Add(ctx context.Context, token *account.RefreshToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := tokenFromDomain(token)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByHash retrieves a token record by its SHA-256 hash.
func (r *GormRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*account.RefreshToken, error) {
	var dto RefreshTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refresh token", hash)
		}
		return nil, err
	}

	return tokenToDomain(dto)
}

// Revoke marks a token record as revoked.
func (r *GormRefreshTokenRepository) Revoke(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RefreshTokenDTO{}).
		Where("id = ?", id.Bytes()).
		Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("refresh token", id.String())
	}

	return nil
}

// DeleteExpired removes token records that expired before the given time
// or were already revoked.
func (r *GormRefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked", before).
		Delete(&RefreshTokenDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
