package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when no invoice matches the lookup key.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceAlreadyExists is returned when an order already has an invoice.
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for order")
)

// InvoiceRepository defines invoice persistence. An order has at most one invoice.
type InvoiceRepository interface {
	// CreateInvoice persists a new invoice. It returns ErrInvoiceAlreadyExists
	// if the order already has one.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error

	// FindInvoiceByOrderNumber retrieves the invoice of an order by its public number.
	FindInvoiceByOrderNumber(ctx context.Context, orderNumber int64) (*entity.Invoice, error)

	// FindInvoiceByOrderID retrieves the invoice of an order by its internal ID.
	FindInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// MarkInvoicePaid sets the payment status to paid. It is idempotent.
	MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) error
}
