package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment lifecycle of an order. The lifecycle is
// linear: waiting_payment -> processing -> in_delivery -> delivered.
type OrderStatus string

const (
	OrderStatusWaitingPayment OrderStatus = "waiting_payment"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusInDelivery     OrderStatus = "in_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusWaitingPayment: 0,
	OrderStatusProcessing:     1,
	OrderStatusInDelivery:     2,
	OrderStatusDelivered:      3,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]

	return ok
}

// Rank returns the position of the status in the lifecycle, or -1 for
// unknown values.
func (s OrderStatus) Rank() int {
	rank, ok := orderStatusRank[s]
	if !ok {
		return -1
	}

	return rank
}

// Precedes reports whether moving from s to next is a forward transition.
func (s OrderStatus) Precedes(next OrderStatus) bool {
	return next.IsValid() && s.Rank() < next.Rank()
}

// StatusesBefore returns every status that strictly precedes s, in lifecycle order.
func StatusesBefore(s OrderStatus) []OrderStatus {
	before := make([]OrderStatus, 0, len(orderStatusRank))
	for _, candidate := range []OrderStatus{
		OrderStatusWaitingPayment,
		OrderStatusProcessing,
		OrderStatusInDelivery,
		OrderStatusDelivered,
	} {
		if candidate.Precedes(s) {
			before = append(before, candidate)
		}
	}

	return before
}

// DeliveryAddress is the structured shipping destination of an order.
// Every field is required except Detail.
type DeliveryAddress struct {
	Provinsi  string
	Kabupaten string
	Kecamatan string
	Kelurahan string
	Detail    string
}

// Validate checks that the required address fields are present.
func (a DeliveryAddress) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"provinsi":  a.Provinsi,
		"kabupaten": a.Kabupaten,
		"kecamatan": a.Kecamatan,
		"kelurahan": a.Kelurahan,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return errors.Errorf("delivery address is missing %s", strings.Join(missing, ", "))
	}

	return nil
}

// Order is a committed purchase. Items are frozen at commit time; only Status
// changes afterwards, and only through payment reconciliation.
type Order struct {
	ID              uuid.UUID
	OrderNumber     int64 // Business key shared with the payment gateway.
	Status          OrderStatus
	DeliveryFee     int64
	DeliveryAddress DeliveryAddress
	UserID          uuid.UUID
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemsCount is the total quantity across all items. It is derived, never stored.
func (o *Order) ItemsCount() int64 {
	var count int64
	for _, item := range o.Items {
		count += item.Qty
	}

	return count
}

// Key returns the order business key as sent to the payment gateway.
func (o *Order) Key() string {
	return FormatOrderKey(o.OrderNumber)
}

// OrderItem is a snapshot of a purchased line. Name and Price are copied from
// the catalog when the order is placed and never re-read afterwards.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     int64
	Qty       int64
}

// FormatOrderKey renders an order number as the gateway business key.
func FormatOrderKey(orderNumber int64) string {
	return strconv.FormatInt(orderNumber, 10)
}

// ParseOrderKey parses a gateway business key back into an order number.
func ParseOrderKey(key string) (int64, error) {
	orderNumber, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
	if err != nil || orderNumber <= 0 {
		return 0, errors.Errorf("invalid order key %q", key)
	}

	return orderNumber, nil
}
