package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler reads the authenticated user's profile from the
// database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for user profile queries.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			first_name,
			last_name,
			phone_number
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	var (
		resp UserResponse
		id   uuid.UUID
	)
	if err = rows.Scan(
		&id,
		&resp.Email,
		&resp.FirstName,
		&resp.LastName,
		&resp.PhoneNumber,
	); err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
