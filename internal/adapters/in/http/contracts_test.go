package http

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

func TestToUserResponse(t *testing.T) {
	id := kernel.NewUUID()
	user, err := account.NewUser(id, "jamie@example.com", "hash", "Jamie", "Doe", "+15550100")
	require.NoError(t, err)

	got := toUserResponse(user)

	want := userResponse{
		ID:          id.String(),
		Email:       "jamie@example.com",
		FirstName:   "Jamie",
		LastName:    "Doe",
		PhoneNumber: "+15550100",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("user response mismatch (-want +got):\n%s", diff)
	}
}

func TestToAddressResponse(t *testing.T) {
	id := kernel.NewUUID()
	address, err := account.NewAddress(id, kernel.NewUUID(), "12 Main St", "4b", "Springfield", "+15550100", true)
	require.NoError(t, err)

	got := toAddressResponse(address)

	want := addressResponse{
		ID:            id.String(),
		StreetAddress: "12 Main St",
		Apartment:     "4b",
		City:          "Springfield",
		Phone:         "+15550100",
		IsDefault:     true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("address response mismatch (-want +got):\n%s", diff)
	}
}

func TestToMenuItemResponse(t *testing.T) {
	itemID := kernel.NewUUID()
	categoryID := kernel.NewUUID()

	got := toMenuItemResponse(queries.MenuItemResponse{
		ID:           itemID,
		Name:         "Margherita",
		Description:  "Tomato and mozzarella",
		Price:        decimal.RequireFromString("150.5"),
		CategoryID:   categoryID,
		CategoryName: "Pizza",
		ImageURL:     "/images/margherita.jpg",
	})

	want := menuItemResponse{
		ID:          itemID.String(),
		Name:        "Margherita",
		Description: "Tomato and mozzarella",
		Price:       "150.50",
		Category: categoryResponse{
			ID:   categoryID.String(),
			Name: "Pizza",
		},
		ImageURL: "/images/margherita.jpg",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("menu item response mismatch (-want +got):\n%s", diff)
	}
}
