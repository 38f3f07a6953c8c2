package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("valid without filter", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), nil, false)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("valid with status filter", func(t *testing.T) {
		status := order.Preparing
		query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), &status, false)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, *query.StatusFilter())
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		status := order.Unknown
		_, err := queries.NewGetOrdersQuery(kernel.NewUUID(), &status, false)
		require.Error(t, err)
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(kernel.UUID{}, nil, false)
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetOrdersQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetOrderQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetMenuItemsQuery(t *testing.T) {
	t.Run("valid with and without category", func(t *testing.T) {
		require.NoError(t, queries.NewGetMenuItemsQuery("").Validate())
		query := queries.NewGetMenuItemsQuery("Pizza")
		require.NoError(t, query.Validate())
		assert.Equal(t, "Pizza", query.CategoryName())
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetMenuItemsQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetMenuItemsQueryIsNotConstructed)
	})
}

func TestNewGetCategoriesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, queries.NewGetCategoriesQuery().Validate())
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetCategoriesQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCategoriesQueryIsNotConstructed)
	})
}

func TestNewGetAddressesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetAddressesQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		_, err := queries.NewGetAddressesQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetAddressesQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetAddressesQueryIsNotConstructed)
	})
}

func TestNewGetUserQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetUserQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		_, err := queries.NewGetUserQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetUserQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)
	})
}
