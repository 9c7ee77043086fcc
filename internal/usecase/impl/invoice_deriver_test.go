package impl

import (
	"math"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(fee int64, items ...entity.OrderItem) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		OrderNumber: 1001,
		Status:      entity.OrderStatusWaitingPayment,
		DeliveryFee: fee,
		DeliveryAddress: entity.DeliveryAddress{
			Provinsi:  "Jawa Barat",
			Kabupaten: "Bandung",
			Kecamatan: "Coblong",
			Kelurahan: "Dago",
		},
		UserID: uuid.New(),
		Items:  items,
	}
}

func TestDeriveInvoice_Example(t *testing.T) {
	order := newTestOrder(3000,
		entity.OrderItem{Name: "Kopi", Price: 10000, Qty: 2},
		entity.OrderItem{Name: "Teh", Price: 5000, Qty: 1},
	)

	invoice, err := DeriveInvoice(order)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), invoice.SubTotal)
	assert.Equal(t, int64(3000), invoice.DeliveryFee)
	assert.Equal(t, int64(28000), invoice.Total)
	assert.Equal(t, entity.PaymentStatusUnpaid, invoice.PaymentStatus)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.Equal(t, order.OrderNumber, invoice.OrderNumber)
	assert.Equal(t, order.UserID, invoice.UserID)
}

func TestDeriveInvoice_TotalIsSubTotalPlusFee(t *testing.T) {
	cases := [][]entity.OrderItem{
		{{Price: 0, Qty: 1}},
		{{Price: 1, Qty: 1}, {Price: 2, Qty: 3}},
		{{Price: 99999, Qty: 7}, {Price: 0, Qty: 4}, {Price: 15, Qty: 15}},
	}
	for _, fee := range []int64{0, 1, 12500} {
		for _, items := range cases {
			invoice, err := DeriveInvoice(newTestOrder(fee, items...))
			require.NoError(t, err)

			var want int64
			for _, item := range items {
				want += item.Price * item.Qty
			}
			assert.Equal(t, want+fee, invoice.Total)
			assert.GreaterOrEqual(t, invoice.Total, fee)
		}
	}
}

func TestDeriveInvoice_AddressIsCopied(t *testing.T) {
	order := newTestOrder(0, entity.OrderItem{Price: 100, Qty: 1})

	invoice, err := DeriveInvoice(order)
	require.NoError(t, err)

	order.DeliveryAddress.Kelurahan = "Lebak Siliwangi"
	order.DeliveryFee = 9999
	assert.Equal(t, "Dago", invoice.DeliveryAddress.Kelurahan)
	assert.Equal(t, int64(100), invoice.Total)
}

func TestDeriveInvoice_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		order *entity.Order
	}{
		{name: "no items", order: newTestOrder(0)},
		{name: "negative fee", order: newTestOrder(-1, entity.OrderItem{Price: 1, Qty: 1})},
		{name: "negative price", order: newTestOrder(0, entity.OrderItem{Price: -5, Qty: 1})},
		{name: "zero qty", order: newTestOrder(0, entity.OrderItem{Price: 5, Qty: 0})},
		{name: "negative qty", order: newTestOrder(0, entity.OrderItem{Price: 5, Qty: -2})},
		{name: "line amount overflows", order: newTestOrder(3000, entity.OrderItem{Price: 10000, Qty: 1e15})},
		{name: "sub total overflows", order: newTestOrder(0,
			entity.OrderItem{Price: math.MaxInt64 / 2, Qty: 1},
			entity.OrderItem{Price: math.MaxInt64 / 2, Qty: 1},
			entity.OrderItem{Price: 2, Qty: 1},
		)},
		{name: "fee overflows total", order: newTestOrder(math.MaxInt64, entity.OrderItem{Price: 1, Qty: 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice, err := DeriveInvoice(tt.order)
			assert.Nil(t, invoice)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrder))
		})
	}
}

func TestDeriveInvoice_LargestRepresentableTotal(t *testing.T) {
	invoice, err := DeriveInvoice(newTestOrder(math.MaxInt64-10, entity.OrderItem{Price: 5, Qty: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), invoice.Total)
	assert.GreaterOrEqual(t, invoice.Total, invoice.DeliveryFee)
}
