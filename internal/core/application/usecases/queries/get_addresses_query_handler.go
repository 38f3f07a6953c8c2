package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAddressesQueryHandler reads the user's address book from the
// database.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address book queries.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle executes the query. Default addresses sort first, then by city
// and street for stable output.
func (h GetAddressesQueryHandler) Handle(ctx context.Context, query GetAddressesQuery) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			street_address,
			apartment,
			city,
			phone,
			is_default
		FROM addresses
		WHERE user_id = ?
		ORDER BY is_default DESC, city, street_address
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]AddressResponse, 0)
	for rows.Next() {
		var (
			address AddressResponse
			id      uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&address.StreetAddress,
			&address.Apartment,
			&address.City,
			&address.Phone,
			&address.IsDefault,
		); err != nil {
			return nil, err
		}

		addressID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		address.ID = addressID

		addresses = append(addresses, address)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
