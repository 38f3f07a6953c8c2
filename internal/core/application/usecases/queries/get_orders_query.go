// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-friendly
// rows straight from the database.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the authenticated user's order history,
// newest first.
//
// Canceled orders are hidden by default. They come back when showCanceled
// is set or when the status filter explicitly asks for canceled orders.
type GetOrdersQuery struct {
	userID       kernel.UUID
	statusFilter *order.Status
	showCanceled bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the user's order history.
// statusFilter is optional; when present it must be a valid lifecycle
// state.
func NewGetOrdersQuery(userID kernel.UUID, statusFilter *order.Status, showCanceled bool) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		userID:       userID,
		statusFilter: statusFilter,
		showCanceled: showCanceled,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the user whose orders are listed.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// StatusFilter returns the optional lifecycle state filter.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// ShowCanceled reports whether canceled orders are included.
func (q GetOrdersQuery) ShowCanceled() bool {
	return q.showCanceled
}

// OrderAddressResponse is the shipping address snapshot nested inside an
// order response. Nil when the order was placed without an address or the
// address was deleted afterwards.
type OrderAddressResponse struct {
	ID            kernel.UUID
	StreetAddress string
	Apartment     string
	City          string
	Phone         string
}

// OrderMenuItemResponse is the catalog item nested inside an order line.
type OrderMenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

// OrderItemResponse is one order line. Price is the unit price captured
// at placement time, which may differ from the catalog's current price.
type OrderItemResponse struct {
	ID                  kernel.UUID
	MenuItem            OrderMenuItemResponse
	Quantity            int
	Price               decimal.Decimal
	Subtotal            decimal.Decimal
	SpecialInstructions string
}

// OrderResponse is the full read model of one order.
type OrderResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	Address       *OrderAddressResponse
	PaymentMethod order.PaymentMethod
	SpecialNotes  string
	Total         decimal.Decimal
	Status        order.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CanceledAt    *time.Time
	IsActive      bool
	Items         []OrderItemResponse
}

// CanCancel reports whether the customer may still cancel this order.
func (r OrderResponse) CanCancel() bool {
	return r.Status == order.Pending
}
