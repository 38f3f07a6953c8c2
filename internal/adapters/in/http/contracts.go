package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
)

// Requests. Validation tags are enforced by the echo validator before any
// command is constructed; the domain performs its own deeper validation.

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type placeOrderRequest struct {
	AddressID     *string                 `json:"address_id"`
	PaymentMethod string                  `json:"payment_method" validate:"required"`
	SpecialNotes  string                  `json:"special_notes"`
	Items         []placeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type placeOrderItemRequest struct {
	MenuItemID          string `json:"menu_item_id" validate:"required,uuid"`
	Quantity            int    `json:"quantity" validate:"required,gt=0"`
	SpecialInstructions string `json:"special_instructions"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type addressRequest struct {
	StreetAddress string `json:"street_address" validate:"required"`
	Apartment     string `json:"apartment"`
	City          string `json:"city" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	IsDefault     bool   `json:"is_default"`
}

// Responses.

type errorResponse struct {
	Error string `json:"error"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         userResponse `json:"user"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type menuItemResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       string           `json:"price"`
	Category    categoryResponse `json:"category"`
	ImageURL    string           `json:"image_url"`
}

type addressResponse struct {
	ID            string `json:"id"`
	StreetAddress string `json:"street_address"`
	Apartment     string `json:"apartment"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"is_default"`
}

type orderAddressResponse struct {
	ID            string `json:"id"`
	StreetAddress string `json:"street_address"`
	Apartment     string `json:"apartment"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
}

type orderMenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

type orderItemResponse struct {
	ID                  string                `json:"id"`
	Item                orderMenuItemResponse `json:"item"`
	Quantity            int                   `json:"quantity"`
	Price               string                `json:"price"`
	Subtotal            string                `json:"subtotal"`
	SpecialInstructions string                `json:"special_instructions"`
}

type orderResponse struct {
	ID            string                `json:"id"`
	User          string                `json:"user"`
	Address       *orderAddressResponse `json:"address"`
	PaymentMethod string                `json:"payment_method"`
	SpecialNotes  string                `json:"special_notes"`
	Total         string                `json:"total"`
	Status        string                `json:"status"`
	StatusDisplay string                `json:"status_display"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	CanceledAt    *time.Time            `json:"canceled_at"`
	IsActive      bool                  `json:"is_active"`
	Items         []orderItemResponse   `json:"items"`
	CanCancel     bool                  `json:"can_cancel"`
}

func toUserResponse(user *account.User) userResponse {
	return userResponse{
		ID:          user.ID().String(),
		Email:       user.Email(),
		FirstName:   user.FirstName(),
		LastName:    user.LastName(),
		PhoneNumber: user.PhoneNumber(),
	}
}

func toAddressResponse(address *account.Address) addressResponse {
	return addressResponse{
		ID:            address.ID().String(),
		StreetAddress: address.StreetAddress(),
		Apartment:     address.Apartment(),
		City:          address.City(),
		Phone:         address.Phone(),
		IsDefault:     address.IsDefault(),
	}
}

func toOrderResponse(src queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(src.Items))
	for _, item := range src.Items {
		items = append(items, orderItemResponse{
			ID: item.ID.String(),
			Item: orderMenuItemResponse{
				ID:          item.MenuItem.ID.String(),
				Name:        item.MenuItem.Name,
				Description: item.MenuItem.Description,
				Price:       item.MenuItem.Price.StringFixed(2),
				ImageURL:    item.MenuItem.ImageURL,
			},
			Quantity:            item.Quantity,
			Price:               item.Price.StringFixed(2),
			Subtotal:            item.Subtotal.StringFixed(2),
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	var address *orderAddressResponse
	if src.Address != nil {
		address = &orderAddressResponse{
			ID:            src.Address.ID.String(),
			StreetAddress: src.Address.StreetAddress,
			Apartment:     src.Address.Apartment,
			City:          src.Address.City,
			Phone:         src.Address.Phone,
		}
	}

	return orderResponse{
		ID:            src.ID.String(),
		User:          src.UserID.String(),
		Address:       address,
		PaymentMethod: src.PaymentMethod.String(),
		SpecialNotes:  src.SpecialNotes,
		Total:         src.Total.StringFixed(2),
		Status:        src.Status.String(),
		StatusDisplay: src.Status.Display(),
		CreatedAt:     src.CreatedAt,
		UpdatedAt:     src.UpdatedAt,
		CanceledAt:    src.CanceledAt,
		IsActive:      src.IsActive,
		Items:         items,
		CanCancel:     src.CanCancel(),
	}
}

func toMenuItemResponse(src queries.MenuItemResponse) menuItemResponse {
	return menuItemResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		Description: src.Description,
		Price:       src.Price.StringFixed(2),
		Category: categoryResponse{
			ID:   src.CategoryID.String(),
			Name: src.CategoryName,
		},
		ImageURL: src.ImageURL,
	}
}
