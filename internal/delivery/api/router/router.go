// Package router wires the API routes.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	InvoiceHandler *handler.InvoiceHandler
	PaymentHandler *handler.PaymentHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	invoiceHandler *handler.InvoiceHandler
	paymentHandler *handler.PaymentHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		invoiceHandler: params.InvoiceHandler,
		paymentHandler: params.PaymentHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Gateway webhook; authenticity is checked by signature, not by token.
	apiV1.POST("/payments/notification", r.paymentHandler.HandleNotification)

	// Everything else resolves the actor first. Guests are let through and
	// denied by policy where they lack a grant.
	identified := apiV1.Group("", r.authMiddleware.Identify)

	ordersGroup := identified.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:order_number", r.orderHandler.GetOrder)
	}

	invoicesGroup := identified.Group("/invoices")
	{
		invoicesGroup.GET("/:order_number", r.invoiceHandler.GetInvoice)
		invoicesGroup.POST("/:order_number/payment", r.invoiceHandler.InitiatePayment)
	}

	adminGroup := identified.Group("/admin")
	{
		adminGroup.GET("/settlements", r.adminHandler.ListSettlements)
		adminGroup.POST("/orders/:order_number/reconcile", r.adminHandler.ReconcileOrder)
	}
}
