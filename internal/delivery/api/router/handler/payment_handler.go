package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	NotificationUC usecase.PaymentNotificationUsecase
	Logger         *slog.Logger
}

// PaymentHandler receives payment gateway webhooks.
type PaymentHandler struct {
	notificationUC usecase.PaymentNotificationUsecase
	logger         *slog.Logger
}

func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// HandleNotification handles POST /api/v1/payments/notification. The gateway
// is always acknowledged: rejected notifications are recorded, and missed
// ones are recovered by the stale order sync.
func (h *PaymentHandler) HandleNotification(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Warn("Failed to read payment notification body", slog.Any("error", err))

		return c.String(http.StatusOK, "success")
	}

	if err := h.notificationUC.HandleNotification(ctx, payload); err != nil {
		logger.Error("Payment notification not settled", slog.Any("error", err))
	}

	return c.String(http.StatusOK, "success")
}
