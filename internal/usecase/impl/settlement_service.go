package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settlementService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	recordRepo repository.SettlementRecordRepository
	gateway    service.PaymentGateway
	policy     *policy.Engine
	staleAfter time.Duration
	batchSize  int
	logger     *slog.Logger
}

// SettlementServiceParams holds dependencies for SettlementService, injected by Fx.
type SettlementServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	RecordRepo repository.SettlementRecordRepository
	Gateway    service.PaymentGateway
	Policy     *policy.Engine
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(params SettlementServiceParams) usecase.SettlementUsecase {
	srv := &settlementService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		recordRepo: params.RecordRepo,
		gateway:    params.Gateway,
		policy:     params.Policy,
		staleAfter: 30 * time.Minute,
		batchSize:  50,
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Reconcile != nil {
		if params.Config.Reconcile.StaleAfter > 0 {
			srv.staleAfter = params.Config.Reconcile.StaleAfter
		}
		if params.Config.Reconcile.BatchSize > 0 {
			srv.batchSize = params.Config.Reconcile.BatchSize
		}
	}

	return srv
}

func (srv *settlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reconcile moves the order and invoice named by the notification to the
// absolute state the notification implies. Both writes happen in one
// transaction that holds a row lock on the order, so concurrent deliveries
// for the same order are serialized. The order status only ever moves
// forward, which makes redelivery and out-of-order arrival harmless.
func (srv *settlementService) Reconcile(ctx context.Context, notification *entity.SettlementNotification) (entity.SettlementOutcome, error) {
	transition, ok := notification.Transition()
	if !ok {
		srv.record(ctx, notification, entity.SettlementOutcomeIgnored, "transaction status carries no state change")

		return entity.SettlementOutcomeIgnored, nil
	}

	orderNumber, err := entity.ParseOrderKey(notification.OrderKey)
	if err != nil {
		srv.record(ctx, notification, entity.SettlementOutcomeRejected, err.Error())

		return entity.SettlementOutcomeRejected, nil
	}

	var changed bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var applyErr error
		changed, applyErr = applyTransition(ctx, repoFactory, orderNumber, transition)

		return applyErr
	})
	if errors.Is(err, domainerrors.ErrNotificationRejected) {
		srv.record(ctx, notification, entity.SettlementOutcomeRejected, err.Error())

		return entity.SettlementOutcomeRejected, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to reconcile settlement",
			slog.String("order_key", notification.OrderKey),
			slog.String("transaction_status", notification.TransactionStatus),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to apply settlement")
	}

	reason := "order " + string(transition.OrderStatus) + ", invoice " + string(transition.PaymentStatus)
	if !changed {
		reason = "already settled"
	}
	srv.record(ctx, notification, entity.SettlementOutcomeApplied, reason)

	return entity.SettlementOutcomeApplied, nil
}

// applyTransition reports whether any field was written.
func applyTransition(ctx context.Context, repoFactory repository.RepositoryFactory, orderNumber int64, transition entity.SettlementTransition) (bool, error) {
	orderRepo := repoFactory.NewOrderRepository()
	invoiceRepo := repoFactory.NewInvoiceRepository()

	order, err := orderRepo.FindOrderByNumberForUpdate(ctx, orderNumber)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return false, domainerrors.ErrNotificationRejected.WithDetails("unknown order")
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to lock order")
	}

	invoice, err := invoiceRepo.FindInvoiceByOrderID(ctx, order.ID)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return false, domainerrors.ErrNotificationRejected.WithDetails("order has no invoice")
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find invoice")
	}

	changed := false
	if transition.PaymentStatus == entity.PaymentStatusPaid && !invoice.IsPaid() {
		if err := invoiceRepo.MarkInvoicePaid(ctx, invoice.ID); err != nil {
			return false, errors.Wrap(err, "failed to mark invoice paid")
		}
		changed = true
	}

	if order.Status.Precedes(transition.OrderStatus) {
		advanced, err := orderRepo.AdvanceOrderStatus(ctx, order.ID, transition.OrderStatus)
		if err != nil {
			return false, errors.Wrap(err, "failed to advance order status")
		}
		changed = changed || advanced
	}

	return changed, nil
}

// record stores the audit entry. A failure here must not change the outcome
// the gateway sees, so it is only logged.
func (srv *settlementService) record(ctx context.Context, notification *entity.SettlementNotification, outcome entity.SettlementOutcome, reason string) {
	logger := srv.log(ctx).With(
		slog.String("order_key", notification.OrderKey),
		slog.String("transaction_status", notification.TransactionStatus),
		slog.String("fraud_status", notification.FraudStatus),
		slog.String("outcome", outcome.String()),
		slog.String("reason", reason),
	)
	if outcome == entity.SettlementOutcomeRejected {
		logger.Warn("Settlement notification rejected")
	} else {
		logger.Info("Settlement notification reconciled")
	}

	if err := srv.recordRepo.CreateRecord(ctx, newSettlementRecord(notification, outcome, reason)); err != nil {
		logger.Error("Failed to store settlement record", slog.Any("error", err))
	}
}

func newSettlementRecord(notification *entity.SettlementNotification, outcome entity.SettlementOutcome, reason string) *entity.SettlementRecord {
	return &entity.SettlementRecord{
		ID:                uuid.New(),
		OrderKey:          notification.OrderKey,
		TransactionStatus: notification.TransactionStatus,
		FraudStatus:       notification.FraudStatus,
		Outcome:           outcome,
		Reason:            reason,
		ReceivedAt:        time.Now(),
	}
}

// ReconcileOrder re-reads the gateway status of one order and reconciles it.
func (srv *settlementService) ReconcileOrder(ctx context.Context, actor entity.Actor, orderNumber int64) (entity.SettlementOutcome, error) {
	pc := srv.policy.For(actor)

	order, err := srv.orderRepo.FindOrderByNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return "", missing(pc, policy.ActionUpdate, policy.SubjectOrder, domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find order")
	}

	if err := authorize(pc, policy.ActionUpdate, policy.OrderResource(order)); err != nil {
		return "", err
	}

	notification, err := srv.gateway.TransactionStatus(ctx, order.Key())
	if err != nil {
		srv.log(ctx).Warn("Payment gateway status call failed",
			slog.String("order_key", order.Key()),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrGatewayUnavailable.WrapMessage("transaction status")
	}

	return srv.Reconcile(ctx, notification)
}

// SyncStaleOrders walks orders still waiting for payment past the stale
// threshold, oldest first, and reconciles each from the gateway status.
// Orders that leave waiting_payment drop out of the result set, so the offset
// only advances past the ones that stay behind.
func (srv *settlementService) SyncStaleOrders(ctx context.Context) (*usecase.SyncResult, error) {
	cutoff := time.Now().Add(-srv.staleAfter)
	result := &usecase.SyncResult{}

	offset := 0
	for {
		orders, err := srv.orderRepo.ListStaleOrders(ctx, entity.OrderStatusWaitingPayment, cutoff, offset, srv.batchSize)
		if err != nil {
			return result, errors.Wrap(err, "failed to list stale orders")
		}

		for _, order := range orders {
			result.Scanned++
			if srv.syncOrder(ctx, order) {
				result.Applied++
			} else {
				offset++
			}
		}

		if len(orders) < srv.batchSize {
			break
		}

		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}
	}

	result.Skipped = result.Scanned - result.Applied
	srv.log(ctx).Info("Stale order sync completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("applied", result.Applied),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// syncOrder reports whether the order left waiting_payment.
func (srv *settlementService) syncOrder(ctx context.Context, order *entity.Order) bool {
	logger := srv.log(ctx).With(slog.String("order_key", order.Key()))

	notification, err := srv.gateway.TransactionStatus(ctx, order.Key())
	if err != nil {
		logger.Warn("Skipping stale order, gateway status unavailable", slog.Any("error", err))

		return false
	}

	outcome, err := srv.Reconcile(ctx, notification)
	if err != nil {
		logger.Error("Skipping stale order, reconciliation failed", slog.Any("error", err))

		return false
	}

	return outcome == entity.SettlementOutcomeApplied
}

// ListRecords returns the settlement audit trail, newest first.
func (srv *settlementService) ListRecords(ctx context.Context, actor entity.Actor, outcome entity.SettlementOutcome, limit, offset int) ([]*entity.SettlementRecord, error) {
	pc := srv.policy.For(actor)
	if err := authorize(pc, policy.ActionRead, policy.Of(policy.SubjectSettlementRecord)); err != nil {
		return nil, err
	}

	if outcome != "" && !outcome.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown outcome " + outcome.String())
	}

	limit, offset = pageBounds(limit, offset)
	records, err := srv.recordRepo.ListRecords(ctx, outcome, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settlement records")
	}

	return records, nil
}
