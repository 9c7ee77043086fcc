package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type settlementRecordRepository struct {
	db *gorm.DB
}

func NewSettlementRecordRepository(db *gorm.DB) repository.SettlementRecordRepository {
	return &settlementRecordRepository{db: db}
}

// CreateRecord appends an audit entry. Records are never updated.
func (repo *settlementRecordRepository) CreateRecord(ctx context.Context, record *entity.SettlementRecord) error {
	if err := repo.db.WithContext(ctx).Create(fromSettlementRecordDomain(record)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create settlement record")
	}

	return nil
}

// ListRecords returns records newest first, optionally filtered by outcome.
func (repo *settlementRecordRepository) ListRecords(ctx context.Context, outcome entity.SettlementOutcome, offset, limit int) ([]*entity.SettlementRecord, error) {
	query := repo.db.WithContext(ctx).Model(&model.SettlementRecordModel{})
	if outcome != "" {
		query = query.Where("outcome = ?", outcome.String())
	}

	var recordModels []*model.SettlementRecordModel
	if err := query.Order("received_at DESC").Offset(offset).Limit(limit).Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settlement records")
	}

	return slice.Map(recordModels, toSettlementRecordDomain), nil
}
