package impl

import (
	"math"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// DeriveInvoice computes the financial record of a committed order.
// Amounts and the delivery address are value copies, so later changes to the
// order never alter an issued invoice. It does not guard against being called
// twice for the same order; the unique order_id index on invoices does.
func DeriveInvoice(order *entity.Order) (*entity.Invoice, error) {
	if len(order.Items) == 0 {
		return nil, domainerrors.ErrInvalidOrder.WithDetails("order has no items")
	}
	if order.DeliveryFee < 0 {
		return nil, domainerrors.ErrInvalidOrder.WithDetails("delivery fee must not be negative")
	}

	var subTotal int64
	for _, item := range order.Items {
		if item.Price < 0 {
			return nil, domainerrors.ErrInvalidOrder.WithDetails("item price must not be negative")
		}
		if item.Qty < 1 {
			return nil, domainerrors.ErrInvalidOrder.WithDetails("item quantity must be at least 1")
		}
		if item.Price > 0 && item.Qty > (math.MaxInt64-subTotal)/item.Price {
			return nil, domainerrors.ErrInvalidOrder.WithDetails("order amount exceeds the supported range")
		}
		subTotal += item.Price * item.Qty
	}
	if order.DeliveryFee > math.MaxInt64-subTotal {
		return nil, domainerrors.ErrInvalidOrder.WithDetails("order amount exceeds the supported range")
	}

	now := time.Now()

	return &entity.Invoice{
		ID:              uuid.New(),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		SubTotal:        subTotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           subTotal + order.DeliveryFee,
		DeliveryAddress: order.DeliveryAddress,
		PaymentStatus:   entity.PaymentStatusUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
