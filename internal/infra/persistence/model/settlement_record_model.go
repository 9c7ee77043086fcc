package model

import (
	"time"

	"github.com/google/uuid"
)

// SettlementRecordModel mirrors the append-only 'settlement_records' table.
type SettlementRecordModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderKey          string    `gorm:"type:varchar(64);not null;index"`
	TransactionStatus string    `gorm:"type:varchar(32);not null"`
	FraudStatus       string    `gorm:"type:varchar(32)"`
	Outcome           string    `gorm:"type:varchar(16);not null;index:idx_settlement_records_outcome_received,priority:1"`
	Reason            string    `gorm:"type:text"`
	ReceivedAt        time.Time `gorm:"not null;index:idx_settlement_records_outcome_received,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (SettlementRecordModel) TableName() string {
	return "settlement_records"
}
