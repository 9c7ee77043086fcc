package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository reads the product catalogue.
type ProductRepository interface {
	// FindProductsByIDs returns the products with the given IDs. Unknown IDs are
	// silently absent from the result.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
}
