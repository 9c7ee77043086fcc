package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when no order matches the lookup key.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberConflict is returned when a generated order number is already taken.
	ErrOrderNumberConflict = errors.New("order number already exists")
)

// OrderRepository defines order persistence.
type OrderRepository interface {
	// CreateOrder persists an order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByNumber retrieves an order and its items by order number.
	FindOrderByNumber(ctx context.Context, orderNumber int64) (*entity.Order, error)

	// FindOrderByNumberForUpdate is FindOrderByNumber holding a row lock until
	// the surrounding transaction ends. Outside a transaction it behaves like
	// FindOrderByNumber.
	FindOrderByNumberForUpdate(ctx context.Context, orderNumber int64) (*entity.Order, error)

	// ListOrdersByUser returns the user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, error)

	// CountOrdersByUser returns the number of orders the user has placed.
	CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListStaleOrders returns orders still in status that were created before
	// the cutoff, oldest first.
	ListStaleOrders(ctx context.Context, status entity.OrderStatus, before time.Time, offset, limit int) ([]*entity.Order, error)

	// AdvanceOrderStatus moves the order to status only if its current status
	// precedes it. It reports whether a row was changed.
	AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (bool, error)
}
