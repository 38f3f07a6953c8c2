package queries

import (
	"context"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its line items.
// The lookup is scoped to the owning user, so a foreign order comes back
// as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.address_id,
			o.payment_method,
			o.special_notes,
			o.total,
			o.status,
			o.created_at,
			o.updated_at,
			o.canceled_at,
			o.is_active,
			a.street_address,
			a.apartment,
			a.city,
			a.phone
		FROM orders o
		LEFT JOIN addresses a ON a.id = o.address_id
		WHERE o.id = ? AND o.user_id = ?
	`, query.OrderID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	itemsByOrder, err := fetchOrderItems(ctx, h.db, []uuid.UUID{resp.ID.Bytes()})
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = itemsByOrder[resp.ID]

	return resp, nil
}
