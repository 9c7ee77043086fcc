package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidOrder.WithDetails("order has no items")

	assert.True(t, errors.Is(err, ErrInvalidOrder))
	assert.False(t, errors.Is(err, ErrOrderNotFound))
	assert.Equal(t, "Order is not valid: order has no items", err.Error())
	assert.Equal(t, "order has no items", err.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrForbidden.WrapMessage("reading order")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
