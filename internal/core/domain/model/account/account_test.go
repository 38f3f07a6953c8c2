package account_test

import (
	"testing"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := account.NewUser(id, "anna@example.com", "$2a$10$hash", "Anna", "Smith", "+4670000000")

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "anna@example.com", u.Email())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.Equal(t, "Anna", u.FirstName())
		assert.Equal(t, "Smith", u.LastName())
		assert.Equal(t, "+4670000000", u.PhoneNumber())
		require.NoError(t, u.Validate())
	})

	t.Run("should normalize email", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "  Anna@Example.COM ", "hash", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, "anna@example.com", u.Email())
	})

	t.Run("should reject empty email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "", "hash", "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "not-an-email", "hash", "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty password hash", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "anna@example.com", "", "", "", "")

		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u account.User
		assert.Equal(t, account.ErrUserIsNotConstructed, u.Validate())
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		a, err := account.NewAddress(id, userID, "1 Main St", "4B", "Springfield", "555-0101", true)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.UserID().IsEqual(userID))
		assert.Equal(t, "1 Main St", a.StreetAddress())
		assert.Equal(t, "4B", a.Apartment())
		assert.Equal(t, "Springfield", a.City())
		assert.Equal(t, "555-0101", a.Phone())
		assert.True(t, a.IsDefault())
		require.NoError(t, a.Validate())
	})

	t.Run("apartment is optional", func(t *testing.T) {
		a, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", "Springfield", "555-0101", false)

		require.NoError(t, err)
		assert.Empty(t, a.Apartment())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		cases := map[string]func() error{
			"street": func() error {
				_, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "", "", "Springfield", "555-0101", false)
				return err
			},
			"city": func() error {
				_, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", "", "555-0101", false)
				return err
			},
			"phone": func() error {
				_, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", "Springfield", "", false)
				return err
			},
		}

		for name, create := range cases {
			t.Run(name, func(t *testing.T) {
				err := create()
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestAddress_Update(t *testing.T) {
	t.Run("should replace mutable details", func(t *testing.T) {
		a, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", "Springfield", "555-0101", false)
		require.NoError(t, err)

		require.NoError(t, a.Update("2 Oak Ave", "12", "Shelbyville", "555-0202", true))

		assert.Equal(t, "2 Oak Ave", a.StreetAddress())
		assert.Equal(t, "12", a.Apartment())
		assert.Equal(t, "Shelbyville", a.City())
		assert.Equal(t, "555-0202", a.Phone())
		assert.True(t, a.IsDefault())
	})

	t.Run("should reject invalid update", func(t *testing.T) {
		a, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", "Springfield", "555-0101", false)
		require.NoError(t, err)

		require.Error(t, a.Update("", "", "Shelbyville", "555-0202", false))
	})
}
