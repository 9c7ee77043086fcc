package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductsByIDs loads the active products among ids. Missing ids are simply absent from the result.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return slice.Map(productModels, toProductDomain), nil
}
