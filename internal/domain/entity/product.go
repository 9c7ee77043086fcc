package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the live catalog record an order item is snapshotted from.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
