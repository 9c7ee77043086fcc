package service

import (
	"context"
)

// SettlementEvent carries a verified gateway notification to the settle worker.
type SettlementEvent struct {
	RequestID         string `json:"request_id,omitempty"` // For distributed tracing
	OrderKey          string `json:"order_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	ReceivedAt        int64  `json:"received_at"` // Unix milliseconds
}

// SettlementPublisher defines the interface for publishing settlement events to a message queue
type SettlementPublisher interface {
	// PublishSettlement publishes a settlement event for async reconciliation
	PublishSettlement(ctx context.Context, event *SettlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
