package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items. GORM writes the
// association rows in the same statement batch, so a failing item insert
// fails the whole create.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order's header. Line items are
// immutable after creation and are deliberately not touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"total":       dto.Total,
			"updated_at":  dto.UpdatedAt,
			"canceled_at": dto.CanceledAt,
			"is_active":   dto.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUser retrieves an order by ID scoped to its owning user. Foreign
// orders are indistinguishable from missing ones.
func (r *GormOrderRepository) GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	return r.getForUser(ctx, r.db, id, userID)
}

// GetForUserLocked retrieves an order under FOR UPDATE, serializing
// concurrent mutations of the same row. Must run inside a transaction.
func (r *GormOrderRepository) GetForUserLocked(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	locked := r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.getForUser(ctx, locked, id, userID)
}

func (r *GormOrderRepository) getForUser(
	ctx context.Context,
	db *gorm.DB,
	id, userID kernel.UUID,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ? AND user_id = ?", id.Bytes(), userID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
