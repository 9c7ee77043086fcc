package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	policy      *policy.Engine
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	InvoiceRepo repository.InvoiceRepository
	UserRepo    repository.UserRepository
	Gateway     service.PaymentGateway
	Policy      *policy.Engine
	Logger      *slog.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		invoiceRepo: params.InvoiceRepo,
		userRepo:    params.UserRepo,
		gateway:     params.Gateway,
		policy:      params.Policy,
		logger:      params.Logger,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetInvoice returns the invoice of an order the actor may read.
func (srv *invoiceService) GetInvoice(ctx context.Context, actor entity.Actor, orderNumber int64) (*entity.Invoice, error) {
	return srv.readableInvoice(ctx, srv.policy.For(actor), orderNumber)
}

func (srv *invoiceService) readableInvoice(ctx context.Context, pc policy.Context, orderNumber int64) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindInvoiceByOrderNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, missing(pc, policy.ActionRead, policy.SubjectInvoice, domainerrors.ErrInvoiceNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invoice")
	}

	if err := authorize(pc, policy.ActionRead, policy.InvoiceResource(invoice)); err != nil {
		return nil, err
	}

	return invoice, nil
}

// InitiatePayment opens a payment session for an unpaid invoice. Nothing is
// written locally; the invoice only changes when a settlement notification
// arrives.
func (srv *invoiceService) InitiatePayment(ctx context.Context, actor entity.Actor, orderNumber int64) (*service.PaymentSession, error) {
	invoice, err := srv.readableInvoice(ctx, srv.policy.For(actor), orderNumber)
	if err != nil {
		return nil, err
	}

	if invoice.IsPaid() {
		return nil, domainerrors.ErrInvoiceAlreadyPaid
	}

	customer, err := srv.userRepo.FindUserByID(ctx, invoice.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invoice owner")
	}

	session, err := srv.gateway.CreateTransaction(ctx, service.PaymentRequest{
		OrderKey:      entity.FormatOrderKey(invoice.OrderNumber),
		GrossAmount:   invoice.Total,
		CustomerName:  customer.FullName,
		CustomerEmail: customer.Email,
	})
	if err != nil {
		srv.log(ctx).Warn("Payment gateway call failed",
			slog.Int64("order_number", orderNumber),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("create transaction")
	}

	srv.log(ctx).Info("Payment session created", slog.Int64("order_number", orderNumber))

	return session, nil
}
