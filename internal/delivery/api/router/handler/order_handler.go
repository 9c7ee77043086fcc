// Package handler contains the API request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderItemRequest is one requested order line.
type PlaceOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Qty       int64  `json:"qty" validate:"min=1,max=1000"`
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	DeliveryFee     int64                   `json:"delivery_fee" validate:"gte=0"`
	DeliveryAddress DeliveryAddressDTO      `json:"delivery_address"`
	Items           []PlaceOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrderResponse is returned after an order and its invoice are committed.
type PlaceOrderResponse struct {
	Order   OrderDTO   `json:"order"`
	Invoice InvoiceDTO `json:"invoice"`
}

// PlaceOrder handles POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.PlaceOrderInput{
		DeliveryFee:     req.DeliveryFee,
		DeliveryAddress: req.DeliveryAddress.toEntity(),
		Items: slice.Map(req.Items, func(_ int, item PlaceOrderItemRequest) usecase.PlaceOrderItem {
			// Validated as a UUID above.
			return usecase.PlaceOrderItem{ProductID: uuid.MustParse(item.ProductID), Qty: item.Qty}
		}),
	}

	ctx := c.Request().Context()
	out, err := h.orderUC.PlaceOrder(ctx, deliverycontext.GetActor(ctx), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PlaceOrderResponse{
		Order:   toOrderDTO(0, out.Order),
		Invoice: toInvoiceDTO(out.Invoice),
	})
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var query pageQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	page, err := h.orderUC.ListOrders(ctx, deliverycontext.GetActor(ctx), query.Limit, query.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, slice.Map(page.Orders, toOrderDTO), &page.Total, query.effectiveLimit(), query.Offset)
}

// GetOrder handles GET /api/v1/orders/:order_number
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderNumber, err := orderNumberParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_NUMBER", "Invalid order number")
	}

	ctx := c.Request().Context()
	order, err := h.orderUC.GetOrder(ctx, deliverycontext.GetActor(ctx), orderNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderDTO(0, order))
}
