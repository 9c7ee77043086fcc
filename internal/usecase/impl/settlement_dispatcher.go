package impl

import (
	"context"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inlineDispatcher reconciles in the request that received the notification.
type inlineDispatcher struct {
	settlement usecase.SettlementUsecase
}

// queueDispatcher hands the notification to the settle worker.
type queueDispatcher struct {
	publisher service.SettlementPublisher
}

// SettlementDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type SettlementDispatcherParams struct {
	fx.In

	Config     *config.Config
	Settlement usecase.SettlementUsecase
	Publisher  service.SettlementPublisher
}

// NewSettlementDispatcher picks the queue when a Pub/Sub provider is
// configured and reconciles inline otherwise.
func NewSettlementDispatcher(params SettlementDispatcherParams) usecase.SettlementDispatcher {
	if params.Config.PubSub != nil && params.Config.PubSub.Provider != "" {
		return &queueDispatcher{publisher: params.Publisher}
	}

	return &inlineDispatcher{settlement: params.Settlement}
}

func (d *inlineDispatcher) Dispatch(ctx context.Context, notification *entity.SettlementNotification) error {
	_, err := d.settlement.Reconcile(ctx, notification)

	return err
}

func (d *queueDispatcher) Dispatch(ctx context.Context, notification *entity.SettlementNotification) error {
	event := &service.SettlementEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		OrderKey:          notification.OrderKey,
		TransactionStatus: notification.TransactionStatus,
		FraudStatus:       notification.FraudStatus,
		ReceivedAt:        time.Now().UnixMilli(),
	}

	return errors.Wrap(d.publisher.PublishSettlement(ctx, event), "failed to publish settlement")
}
