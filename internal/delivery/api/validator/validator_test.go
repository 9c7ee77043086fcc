package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type address struct {
	Provinsi string `json:"provinsi" validate:"required"`
}

type request struct {
	Fee     int64   `json:"delivery_fee" validate:"gte=0"`
	Address address `json:"delivery_address"`
	Items   []item  `json:"items" validate:"required,min=1,dive"`
}

type item struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Qty       int64  `json:"qty" validate:"min=1"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&request{
		Address: address{Provinsi: "Jawa Barat"},
		Items:   []item{{ProductID: "2f1c2f7e-8a43-4b1e-9d0a-3f7d2f9d5b11", Qty: 1}},
	}))

	err := v.Validate(&request{
		Fee:   -1,
		Items: []item{{ProductID: "nope", Qty: 0}},
	})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "delivery_fee must be at least 0")
		assert.Contains(t, err.Error(), "delivery_address.provinsi is required")
		assert.Contains(t, err.Error(), "items[0].product_id must be a UUID")
		assert.Contains(t, err.Error(), "items[0].qty must be at least 1")
	}
}
