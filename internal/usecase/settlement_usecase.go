package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SyncResult summarises one stale order sync run.
type SyncResult struct {
	Scanned int
	Applied int
	Skipped int
}

// SettlementUsecase defines payment reconciliation use cases
type SettlementUsecase interface {
	// Reconcile applies a verified notification to its order and invoice.
	// Unknown orders are rejected without error; only infrastructure failures
	// are returned.
	Reconcile(ctx context.Context, notification *entity.SettlementNotification) (entity.SettlementOutcome, error)

	// ReconcileOrder re-reads the gateway status of one order and reconciles it.
	ReconcileOrder(ctx context.Context, actor entity.Actor, orderNumber int64) (entity.SettlementOutcome, error)

	// SyncStaleOrders reconciles every order left waiting for payment past the
	// configured threshold.
	SyncStaleOrders(ctx context.Context) (*SyncResult, error)

	// ListRecords returns the settlement audit trail.
	ListRecords(ctx context.Context, actor entity.Actor, outcome entity.SettlementOutcome, limit, offset int) ([]*entity.SettlementRecord, error)
}

// PaymentNotificationUsecase handles raw gateway webhooks.
type PaymentNotificationUsecase interface {
	// HandleNotification verifies the payload and hands it on for settlement.
	// Rejected payloads are recorded; the returned error is for logging only.
	HandleNotification(ctx context.Context, payload []byte) error
}

// SettlementDispatcher routes a verified notification to the reconciler,
// either in-process or through the message queue.
type SettlementDispatcher interface {
	Dispatch(ctx context.Context, notification *entity.SettlementNotification) error
}
