package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invoiceRepository implements the domain.InvoiceRepository interface using GORM.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateInvoice persists a derived invoice. The unique order_id index rejects a second invoice for the same order.
func (repo *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Omit("Order").Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrInvoiceAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// FindInvoiceByOrderNumber retrieves the invoice issued for an order number.
func (repo *invoiceRepository) FindInvoiceByOrderNumber(ctx context.Context, orderNumber int64) (*entity.Invoice, error) {
	return repo.findOne(ctx, "order_number = ?", orderNumber)
}

// FindInvoiceByOrderID retrieves the invoice issued for an order.
func (repo *invoiceRepository) FindInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(ctx, "order_id = ?", orderID)
}

func (repo *invoiceRepository) findOne(ctx context.Context, query string, arg any) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// MarkInvoicePaid sets the payment status to paid. Paid is terminal; marking twice is a no-op.
func (repo *invoiceRepository) MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", invoiceID).
		Updates(map[string]any{
			"payment_status": entity.PaymentStatusPaid.String(),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark invoice paid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}
