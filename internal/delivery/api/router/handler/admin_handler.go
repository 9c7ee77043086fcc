package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SettlementUC usecase.SettlementUsecase
	Logger       *slog.Logger
}

// AdminHandler serves settlement operations. Access is decided by the policy
// engine inside the use cases.
type AdminHandler struct {
	settlementUC usecase.SettlementUsecase
	logger       *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		settlementUC: params.SettlementUC,
		logger:       params.Logger,
	}
}

type listSettlementsQuery struct {
	pageQuery
	Outcome string `query:"outcome" validate:"omitempty,oneof=applied ignored rejected"`
}

// ListSettlements handles GET /api/v1/admin/settlements
func (h *AdminHandler) ListSettlements(c echo.Context) error {
	var query listSettlementsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	records, err := h.settlementUC.ListRecords(ctx, deliverycontext.GetActor(ctx),
		entity.SettlementOutcome(query.Outcome), query.Limit, query.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, slice.Map(records, toSettlementRecordDTO), nil, query.effectiveLimit(), query.Offset)
}

// ReconcileOrder handles POST /api/v1/admin/orders/:order_number/reconcile
func (h *AdminHandler) ReconcileOrder(c echo.Context) error {
	orderNumber, err := orderNumberParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_NUMBER", "Invalid order number")
	}

	ctx := c.Request().Context()
	outcome, err := h.settlementUC.ReconcileOrder(ctx, deliverycontext.GetActor(ctx), orderNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"order_number": formatOrderNumber(orderNumber),
		"outcome":      outcome.String(),
	})
}
