package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler serves invoice reads and payment initiation.
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// GetInvoice handles GET /api/v1/invoices/:order_number
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	orderNumber, err := orderNumberParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_NUMBER", "Invalid order number")
	}

	ctx := c.Request().Context()
	invoice, err := h.invoiceUC.GetInvoice(ctx, deliverycontext.GetActor(ctx), orderNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toInvoiceDTO(invoice))
}

// InitiatePayment handles POST /api/v1/invoices/:order_number/payment
func (h *InvoiceHandler) InitiatePayment(c echo.Context) error {
	orderNumber, err := orderNumberParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_NUMBER", "Invalid order number")
	}

	ctx := c.Request().Context()
	session, err := h.invoiceUC.InitiatePayment(ctx, deliverycontext.GetActor(ctx), orderNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}
