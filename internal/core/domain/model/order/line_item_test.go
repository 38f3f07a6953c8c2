package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create valid line item", func(t *testing.T) {
		id := kernel.NewUUID()
		menuItemID := kernel.NewUUID()
		price := decimal.RequireFromString("150.00")

		item, err := order.NewLineItem(id, menuItemID, 2, price, "no onions")

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.Price().Equal(price))
		assert.Equal(t, "no onions", item.SpecialInstructions())
		require.NoError(t, item.Validate())
	})

	t.Run("should allow empty instructions", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(10), "")

		require.NoError(t, err)
		assert.Empty(t, item.SpecialInstructions())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 0, decimal.NewFromInt(10), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), -3, decimal.NewFromInt(10), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(-1), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid menu item id", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), kernel.UUID{}, 1, decimal.NewFromInt(10), "")

		require.Error(t, err)
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	t.Run("should multiply price by quantity exactly", func(t *testing.T) {
		item, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), 3, decimal.RequireFromString("19.99"), "")
		require.NoError(t, err)

		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("59.97")),
			"expected 59.97, got %s", item.Subtotal())
	})

	t.Run("should not accumulate rounding drift", func(t *testing.T) {
		item, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), 10, decimal.RequireFromString("0.10"), "")
		require.NoError(t, err)

		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("1.00")))
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var item order.LineItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})

	t.Run("nil pointer is not constructed", func(t *testing.T) {
		var item *order.LineItem

		require.Error(t, item.Validate())
	})
}
