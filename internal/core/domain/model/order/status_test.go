package order_test

import (
	"fmt"
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Completed))
		assert.Equal(t, 5, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Preparing,
			order.Shipped,
			order.Completed,
			order.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(6), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "preparing", order.Preparing.String())
		assert.Equal(t, "shipped", order.Shipped.String())
		assert.Equal(t, "completed", order.Completed.String())
		assert.Equal(t, "canceled", order.Canceled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("should return display labels", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.Display())
		assert.Equal(t, "Canceled", order.Canceled.Display())
		assert.Equal(t, "Unknown", order.Status(42).Display())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		for name, want := range map[string]order.Status{
			"pending":   order.Pending,
			"preparing": order.Preparing,
			"shipped":   order.Shipped,
			"completed": order.Completed,
			"canceled":  order.Canceled,
		} {
			got, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "PENDING", "delivered"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow whitelisted edges", func(t *testing.T) {
		allowed := []struct {
			from, to order.Status
		}{
			{order.Pending, order.Preparing},
			{order.Pending, order.Canceled},
			{order.Preparing, order.Shipped},
			{order.Preparing, order.Canceled},
			{order.Shipped, order.Completed},
		}

		for _, edge := range allowed {
			t.Run(fmt.Sprintf("%s to %s", edge.from, edge.to), func(t *testing.T) {
				next, err := edge.from.TransitionTo(edge.to)
				require.NoError(t, err)
				assert.Equal(t, edge.to, next)
			})
		}
	})

	t.Run("should reject edges outside the whitelist", func(t *testing.T) {
		rejected := []struct {
			from, to order.Status
		}{
			{order.Pending, order.Shipped},
			{order.Pending, order.Completed},
			{order.Preparing, order.Completed},
			{order.Shipped, order.Canceled},
			{order.Shipped, order.Preparing},
		}

		for _, edge := range rejected {
			t.Run(fmt.Sprintf("%s to %s", edge.from, edge.to), func(t *testing.T) {
				_, err := edge.from.TransitionTo(edge.to)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidState)
			})
		}
	})

	t.Run("should reject any exit from terminal states", func(t *testing.T) {
		targets := []order.Status{
			order.Pending, order.Preparing, order.Shipped, order.Completed, order.Canceled,
		}

		for _, terminal := range []order.Status{order.Completed, order.Canceled} {
			for _, target := range targets {
				_, err := terminal.TransitionTo(target)
				require.Error(t, err, "expected %s -> %s to be rejected", terminal, target)
				assert.ErrorIs(t, err, errs.ErrInvalidState)
			}
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
