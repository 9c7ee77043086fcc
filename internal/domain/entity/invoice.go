package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the settlement state of an invoice. Paid is terminal.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// Invoice is the financial record derived once from an order. All amounts and
// the delivery address are value copies taken at derivation time; only
// PaymentStatus changes afterwards.
type Invoice struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	OrderNumber     int64
	UserID          uuid.UUID
	SubTotal        int64
	DeliveryFee     int64
	Total           int64
	DeliveryAddress DeliveryAddress
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPaid reports whether the invoice has reached its terminal state.
func (i *Invoice) IsPaid() bool {
	return i.PaymentStatus == PaymentStatusPaid
}
