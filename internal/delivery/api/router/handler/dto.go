package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

// DeliveryAddressDTO is the Indonesian administrative address used in requests and responses.
type DeliveryAddressDTO struct {
	Provinsi  string `json:"provinsi" validate:"required"`
	Kabupaten string `json:"kabupaten" validate:"required"`
	Kecamatan string `json:"kecamatan" validate:"required"`
	Kelurahan string `json:"kelurahan" validate:"required"`
	Detail    string `json:"detail"`
}

func (d DeliveryAddressDTO) toEntity() entity.DeliveryAddress {
	return entity.DeliveryAddress{
		Provinsi:  d.Provinsi,
		Kabupaten: d.Kabupaten,
		Kecamatan: d.Kecamatan,
		Kelurahan: d.Kelurahan,
		Detail:    d.Detail,
	}
}

func toAddressDTO(a entity.DeliveryAddress) DeliveryAddressDTO {
	return DeliveryAddressDTO{
		Provinsi:  a.Provinsi,
		Kabupaten: a.Kabupaten,
		Kecamatan: a.Kecamatan,
		Kelurahan: a.Kelurahan,
		Detail:    a.Detail,
	}
}

// OrderItemDTO is one snapshotted order line.
type OrderItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Qty       int64     `json:"qty"`
}

// OrderDTO is the public representation of an order. Order numbers are
// rendered as strings to survive JSON number precision limits.
type OrderDTO struct {
	OrderNumber     string             `json:"order_number"`
	Status          string             `json:"status"`
	DeliveryFee     int64              `json:"delivery_fee"`
	DeliveryAddress DeliveryAddressDTO `json:"delivery_address"`
	ItemsCount      int64              `json:"items_count"`
	Items           []OrderItemDTO     `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
}

func toOrderDTO(_ int, o *entity.Order) OrderDTO {
	return OrderDTO{
		OrderNumber:     formatOrderNumber(o.OrderNumber),
		Status:          o.Status.String(),
		DeliveryFee:     o.DeliveryFee,
		DeliveryAddress: toAddressDTO(o.DeliveryAddress),
		ItemsCount:      o.ItemsCount(),
		Items: slice.Map(o.Items, func(_ int, item entity.OrderItem) OrderItemDTO {
			return OrderItemDTO{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Qty:       item.Qty,
			}
		}),
		CreatedAt: o.CreatedAt,
	}
}

// InvoiceDTO is the public representation of an invoice.
type InvoiceDTO struct {
	OrderNumber     string             `json:"order_number"`
	SubTotal        int64              `json:"sub_total"`
	DeliveryFee     int64              `json:"delivery_fee"`
	Total           int64              `json:"total"`
	DeliveryAddress DeliveryAddressDTO `json:"delivery_address"`
	PaymentStatus   string             `json:"payment_status"`
	CreatedAt       time.Time          `json:"created_at"`
}

func toInvoiceDTO(i *entity.Invoice) InvoiceDTO {
	return InvoiceDTO{
		OrderNumber:     formatOrderNumber(i.OrderNumber),
		SubTotal:        i.SubTotal,
		DeliveryFee:     i.DeliveryFee,
		Total:           i.Total,
		DeliveryAddress: toAddressDTO(i.DeliveryAddress),
		PaymentStatus:   i.PaymentStatus.String(),
		CreatedAt:       i.CreatedAt,
	}
}

// SettlementRecordDTO is one entry of the settlement audit trail.
type SettlementRecordDTO struct {
	ID                uuid.UUID `json:"id"`
	OrderKey          string    `json:"order_key"`
	TransactionStatus string    `json:"transaction_status"`
	FraudStatus       string    `json:"fraud_status,omitempty"`
	Outcome           string    `json:"outcome"`
	Reason            string    `json:"reason,omitempty"`
	ReceivedAt        time.Time `json:"received_at"`
}

func toSettlementRecordDTO(_ int, r *entity.SettlementRecord) SettlementRecordDTO {
	return SettlementRecordDTO{
		ID:                r.ID,
		OrderKey:          r.OrderKey,
		TransactionStatus: r.TransactionStatus,
		FraudStatus:       r.FraudStatus,
		Outcome:           r.Outcome.String(),
		Reason:            r.Reason,
		ReceivedAt:        r.ReceivedAt,
	}
}
