package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentNotificationService struct {
	gateway    service.PaymentGateway
	dispatcher usecase.SettlementDispatcher
	recordRepo repository.SettlementRecordRepository
	logger     *slog.Logger
}

// PaymentNotificationServiceParams holds dependencies for the webhook service, injected by Fx.
type PaymentNotificationServiceParams struct {
	fx.In

	Gateway    service.PaymentGateway
	Dispatcher usecase.SettlementDispatcher
	RecordRepo repository.SettlementRecordRepository
	Logger     *slog.Logger
}

// NewPaymentNotificationService creates the webhook service
func NewPaymentNotificationService(params PaymentNotificationServiceParams) usecase.PaymentNotificationUsecase {
	return &paymentNotificationService{
		gateway:    params.Gateway,
		dispatcher: params.Dispatcher,
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

// HandleNotification authenticates the payload before anything else runs.
// Payloads that fail verification are recorded as rejected and never reach
// the reconciler.
func (srv *paymentNotificationService) HandleNotification(ctx context.Context, payload []byte) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	notification, err := srv.gateway.VerifyNotification(ctx, payload)
	if err != nil {
		rejected := &entity.SettlementNotification{}
		if notification != nil {
			rejected = notification
		}
		logger.Warn("Settlement notification failed verification",
			slog.String("order_key", rejected.OrderKey),
			slog.Any("error", err),
		)

		record := newSettlementRecord(rejected, entity.SettlementOutcomeRejected, "verification failed: "+err.Error())
		if recErr := srv.recordRepo.CreateRecord(ctx, record); recErr != nil {
			logger.Error("Failed to store settlement record", slog.Any("error", recErr))
		}

		return errors.Wrap(err, "notification verification failed")
	}

	if err := srv.dispatcher.Dispatch(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to dispatch settlement")
	}

	return nil
}
