package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentRequest is what the gateway needs to open a payment session.
type PaymentRequest struct {
	OrderKey      string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
}

// PaymentSession is the redirect information returned to the shopper.
type PaymentSession struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentGateway is the payment provider collaborator.
type PaymentGateway interface {
	// CreateTransaction opens a payment session. It must not be retried
	// blindly by callers: a timeout leaves local state untouched.
	CreateTransaction(ctx context.Context, req PaymentRequest) (*PaymentSession, error)

	// VerifyNotification authenticates a raw webhook payload and extracts the
	// settlement fields from it.
	VerifyNotification(ctx context.Context, payload []byte) (*entity.SettlementNotification, error)

	// TransactionStatus asks the gateway for the current state of an order's transaction.
	TransactionStatus(ctx context.Context, orderKey string) (*entity.SettlementNotification, error)
}
