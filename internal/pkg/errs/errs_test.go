package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("matches sentinel via errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("menuItemId", "456")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("special\nnotes")
		assert.Contains(t, err.Error(), "special notes")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: email", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: email (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("email", "user@example.com")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "user@example.com", err.Value)
		assert.Equal(t, "object already exists: email user@example.com", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewObjectAlreadyExistsErrorWithCause("email", "user@example.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: email user@example.com (cause: duplicate key value violates unique constraint)",
			err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("only pending orders can be canceled")

		assert.Equal(t, "only pending orders can be canceled", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: only pending orders can be canceled", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("completed is a terminal status")
		err := errs.NewInvalidStateErrorWithCause("status transition rejected", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: status transition rejected (cause: completed is a terminal status)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
