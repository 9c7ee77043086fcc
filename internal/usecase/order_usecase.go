package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderItem is one requested line of a new order.
type PlaceOrderItem struct {
	ProductID uuid.UUID
	Qty       int64
}

// PlaceOrderInput represents the input for committing a new order.
type PlaceOrderInput struct {
	DeliveryFee     int64
	DeliveryAddress entity.DeliveryAddress
	Items           []PlaceOrderItem
}

// PlaceOrderOutput holds the committed order and the invoice derived from it.
type PlaceOrderOutput struct {
	Order   *entity.Order
	Invoice *entity.Invoice
}

// OrderPage is one page of an actor's orders.
type OrderPage struct {
	Orders []*entity.Order
	Total  int64
}

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	// PlaceOrder commits an order and derives its invoice in one transaction.
	PlaceOrder(ctx context.Context, actor entity.Actor, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// GetOrder returns a single order the actor may read.
	GetOrder(ctx context.Context, actor entity.Actor, orderNumber int64) (*entity.Order, error)

	// ListOrders returns the actor's own orders, newest first.
	ListOrders(ctx context.Context, actor entity.Actor, limit, offset int) (*OrderPage, error)
}
