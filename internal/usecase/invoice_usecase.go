package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// InvoiceUsecase defines the interface for invoice use cases
type InvoiceUsecase interface {
	// GetInvoice returns the invoice of an order the actor may read.
	GetInvoice(ctx context.Context, actor entity.Actor, orderNumber int64) (*entity.Invoice, error)

	// InitiatePayment opens a gateway payment session for an unpaid invoice.
	InitiatePayment(ctx context.Context, actor entity.Actor, orderNumber int64) (*service.PaymentSession, error)
}
