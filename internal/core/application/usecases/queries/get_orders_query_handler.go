package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the user's order history from the database.
//
// The read happens in two round trips: one for the order headers joined
// with their address snapshots, one for all line items of the selected
// orders in a single ANY() bind. That keeps the item fetch flat instead
// of issuing a query per order.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
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
		WHERE o.user_id = ?
	`
	args := []any{query.UserID().Bytes()}

	switch {
	case query.StatusFilter() != nil:
		sqlText += ` AND o.status = ?`
		args = append(args, query.StatusFilter().String())
	case !query.ShowCanceled():
		sqlText += ` AND o.status != ?`
		args = append(args, order.Canceled.String())
	}

	sqlText += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID.Bytes())
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := fetchOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

// fetchOrderItems loads the line items of all given orders at once,
// keyed by owning order.
func fetchOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[kernel.UUID][]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.id,
			oi.quantity,
			oi.price,
			oi.special_instructions,
			mi.id,
			mi.name,
			mi.description,
			mi.price,
			mi.image_url
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ANY(?)
		ORDER BY oi.id
	`, pq.Array(orderIDs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[kernel.UUID][]OrderItemResponse)
	for rows.Next() {
		var rawOrderID uuid.UUID
		item, scanErr := scanOrderItemRow(rows, &rawOrderID)
		if scanErr != nil {
			return nil, scanErr
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

// scanOrderRow reads one order header row, including the left-joined
// address columns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		userID        uuid.UUID
		addressID     uuid.NullUUID
		paymentMethod string
		status        string
		canceledAt    sql.NullTime
		street        sql.NullString
		apartment     sql.NullString
		city          sql.NullString
		phone         sql.NullString
	)

	if err := rows.Scan(
		&id,
		&userID,
		&addressID,
		&paymentMethod,
		&resp.SpecialNotes,
		&resp.Total,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&canceledAt,
		&resp.IsActive,
		&street,
		&apartment,
		&city,
		&phone,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.UserID = ownerID

	resp.PaymentMethod, err = order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status, err = order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	if canceledAt.Valid {
		t := canceledAt.Time
		resp.CanceledAt = &t
	}

	if addressID.Valid {
		shipTo, addrErr := kernel.UUIDFromBytes(addressID.UUID[:])
		if addrErr != nil {
			return OrderResponse{}, addrErr
		}
		resp.Address = &OrderAddressResponse{
			ID:            shipTo,
			StreetAddress: street.String,
			Apartment:     apartment.String,
			City:          city.String,
			Phone:         phone.String,
		}
	}

	return resp, nil
}

// scanOrderItemRow reads one line item row with its joined catalog item.
// The owning order id lands in rawOrderID.
func scanOrderItemRow(rows *sql.Rows, rawOrderID *uuid.UUID) (OrderItemResponse, error) {
	var (
		item       OrderItemResponse
		itemID     uuid.UUID
		menuItemID uuid.UUID
	)

	if err := rows.Scan(
		rawOrderID,
		&itemID,
		&item.Quantity,
		&item.Price,
		&item.SpecialInstructions,
		&menuItemID,
		&item.MenuItem.Name,
		&item.MenuItem.Description,
		&item.MenuItem.Price,
		&item.MenuItem.ImageURL,
	); err != nil {
		return OrderItemResponse{}, err
	}

	lineID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.ID = lineID

	catalogID, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.MenuItem.ID = catalogID

	item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return item, nil
}
