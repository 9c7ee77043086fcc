package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order together with its item snapshots.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberConflict
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidOrder.WrapMessage("order violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByNumber retrieves an order and its items by business key.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByNumberForUpdate locks the order row until the surrounding transaction ends.
// Items are loaded without a lock.
func (repo *orderRepository) FindOrderByNumberForUpdate(ctx context.Context, orderNumber int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_number = ?", orderNumber).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order by number")
	}

	if err := repo.db.WithContext(ctx).Where("order_id = ?", orderM.ID).Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByUser returns a user's orders, newest first.
func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return slice.Map(orderModels, func(_ int, orderM *model.OrderModel) *entity.Order {
		return toOrderDomain(orderM)
	}), nil
}

// CountOrdersByUser counts every order owned by the user.
func (repo *orderRepository) CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders by user")
	}

	return count, nil
}

// ListStaleOrders returns orders still in status that were created before the cutoff, oldest first.
func (repo *orderRepository) ListStaleOrders(ctx context.Context, status entity.OrderStatus, before time.Time, offset, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", status.String(), before).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale orders")
	}

	return slice.Map(orderModels, func(_ int, orderM *model.OrderModel) *entity.Order {
		return toOrderDomain(orderM)
	}), nil
}

// AdvanceOrderStatus moves the order to status only when its current status precedes it.
// It reports whether a row changed.
func (repo *orderRepository) AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (bool, error) {
	before := entity.StatusesBefore(status)
	if len(before) == 0 {
		return false, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status IN ?", orderID, slice.Map(before, func(_ int, s entity.OrderStatus) string {
			return s.String()
		})).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to advance order status")
	}

	return result.RowsAffected > 0, nil
}
