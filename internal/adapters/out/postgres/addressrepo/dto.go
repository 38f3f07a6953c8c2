// Package addressrepo provides data transfer objects and mapping
// functions for address book persistence.
package addressrepo

import (
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for shipping addresses.
type AddressDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	Apartment     string    `gorm:"type:varchar(100)"`
	City          string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(30);not null"`
	IsDefault     bool      `gorm:"not null"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(address *account.Address) AddressDTO {
	return AddressDTO{
		ID:            address.ID().Bytes(),
		UserID:        address.UserID().Bytes(),
		StreetAddress: address.StreetAddress(),
		Apartment:     address.Apartment(),
		City:          address.City(),
		Phone:         address.Phone(),
		IsDefault:     address.IsDefault(),
	}
}

func toDomain(dto AddressDTO) (*account.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAddress(id, userID, dto.StreetAddress, dto.Apartment, dto.City, dto.Phone, dto.IsDefault)
}
