// Package userrepo provides data transfer objects and mapping functions
// for user account and refresh token persistence.
package userrepo

import (
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts. The email
// column carries a unique index; the database is the final word on
// duplicate registrations.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	PhoneNumber  string    `gorm:"type:varchar(30)"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// RefreshTokenDTO represents one stored refresh token record. Only the
// SHA-256 hash of the raw token lands here.
type RefreshTokenDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for refresh tokens.
func (RefreshTokenDTO) TableName() string {
	return "refresh_tokens"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		FirstName:    user.FirstName(),
		LastName:     user.LastName(),
		PhoneNumber:  user.PhoneNumber(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.PasswordHash, dto.FirstName, dto.LastName, dto.PhoneNumber)
}

func tokenFromDomain(token *account.RefreshToken) RefreshTokenDTO {
	return RefreshTokenDTO{
		ID:        token.ID().Bytes(),
		UserID:    token.UserID().Bytes(),
		TokenHash: token.TokenHash(),
		ExpiresAt: token.ExpiresAt(),
		Revoked:   token.Revoked(),
		CreatedAt: token.CreatedAt(),
	}
}

func tokenToDomain(dto RefreshTokenDTO) (*account.RefreshToken, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreRefreshToken(id, userID, dto.TokenHash, dto.ExpiresAt, dto.Revoked, dto.CreatedAt)
}
