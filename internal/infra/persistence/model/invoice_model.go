package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table. One invoice exists per order.
type InvoiceModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key"`
	OrderID         uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_order_id"`
	OrderNumber     int64                `gorm:"not null;uniqueIndex:idx_invoices_order_number"`
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	SubTotal        int64                `gorm:"not null"`
	DeliveryFee     int64                `gorm:"not null"`
	Total           int64                `gorm:"not null"`
	DeliveryAddress DeliveryAddressModel `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentStatus   string               `gorm:"type:varchar(16);not null;default:'unpaid'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
