package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAddressModel is embedded into orders and invoices with a 'delivery_' column prefix.
type DeliveryAddressModel struct {
	Provinsi  string `gorm:"type:varchar(100);not null"`
	Kabupaten string `gorm:"type:varchar(100);not null"`
	Kecamatan string `gorm:"type:varchar(100);not null"`
	Kelurahan string `gorm:"type:varchar(100);not null"`
	Detail    string `gorm:"type:text"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key"`
	OrderNumber     int64                `gorm:"not null;uniqueIndex:idx_orders_order_number"`
	Status          string               `gorm:"type:varchar(32);not null;index:idx_orders_status_created,priority:1"`
	DeliveryFee     int64                `gorm:"not null"`
	DeliveryAddress DeliveryAddressModel `gorm:"embedded;embeddedPrefix:delivery_"`
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	Items           []OrderItemModel     `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `gorm:"index:idx_orders_status_created,priority:2;index:idx_orders_user_created,priority:2"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are snapshots taken at checkout.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null"`
	Qty       int64     `gorm:"not null;check:chk_order_items_qty,qty > 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
