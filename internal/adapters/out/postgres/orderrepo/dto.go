// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. An order and its line items form one composition:
// they are written together and always rehydrated together.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order headers.
// Status and payment method are stored as their lowercase wire strings,
// which keeps the rows readable and the filter SQL obvious.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	AddressID     *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	SpecialNotes  string          `gorm:"type:text"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        string          `gorm:"type:varchar(16);index;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	CanceledAt    *time.Time
	IsActive      bool `gorm:"not null"`

	Items []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one persisted order line. The price column is the
// unit price snapshot captured at placement time.
type LineItemDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID       `gorm:"type:uuid;index;not null"`
	MenuItemID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity            int             `gorm:"not null"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SpecialInstructions string          `gorm:"type:text"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	var addressID *uuid.UUID
	if id := aggregate.AddressID(); id != nil {
		raw := id.Bytes()
		addressID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:                  item.ID().Bytes(),
			OrderID:             aggregate.ID().Bytes(),
			MenuItemID:          item.MenuItemID().Bytes(),
			Quantity:            item.Quantity(),
			Price:               item.Price(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		AddressID:     addressID,
		PaymentMethod: aggregate.PaymentMethod().String(),
		SpecialNotes:  aggregate.SpecialNotes(),
		Total:         aggregate.Total(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		CanceledAt:    aggregate.CanceledAt(),
		IsActive:      aggregate.IsActive(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order aggregate using
// RestoreOrder, keeping the stored total as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var addressID *kernel.UUID
	if dto.AddressID != nil {
		aID, addrErr := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		addressID = &aID
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		addressID,
		paymentMethod,
		dto.SpecialNotes,
		dto.Total,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CanceledAt,
		dto.IsActive,
		items,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, menuItemID, dto.Quantity, dto.Price, dto.SpecialInstructions)
}
