package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettlementRecordRepository stores the audit trail of payment notifications.
type SettlementRecordRepository interface {
	// CreateRecord appends a record.
	CreateRecord(ctx context.Context, record *entity.SettlementRecord) error

	// ListRecords returns records newest first, optionally filtered by outcome.
	// An empty outcome matches all records.
	ListRecords(ctx context.Context, outcome entity.SettlementOutcome, offset, limit int) ([]*entity.SettlementRecord, error)
}
