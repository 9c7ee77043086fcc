package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo         *echo.Echo
	tokens       *mockService.MockTokenService
	orders       *mockUsecase.MockOrderUsecase
	invoices     *mockUsecase.MockInvoiceUsecase
	notification *mockUsecase.MockPaymentNotificationUsecase
	settlement   *mockUsecase.MockSettlementUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	a := &testAPI{
		tokens:       mockService.NewMockTokenService(t),
		orders:       mockUsecase.NewMockOrderUsecase(t),
		invoices:     mockUsecase.NewMockInvoiceUsecase(t),
		notification: mockUsecase.NewMockPaymentNotificationUsecase(t),
		settlement:   mockUsecase.NewMockSettlementUsecase(t),
	}
	a.echo = newEcho(cfg, logger, router.RouterParams{
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: a.orders, Logger: logger}),
		InvoiceHandler: handler.NewInvoiceHandler(handler.InvoiceHandlerParams{InvoiceUC: a.invoices, Logger: logger}),
		PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{NotificationUC: a.notification, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{SettlementUC: a.settlement, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(a.tokens, logger),
	})

	return a
}

func (a *testAPI) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testAPI) loginAs(token string, actor entity.Actor) {
	a.tokens.EXPECT().ValidateAccessToken(token).Return(&service.Claims{UserID: actor.ID, Role: actor.Role}, nil).Maybe()
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

const validOrderBody = `{
	"delivery_fee": 10000,
	"delivery_address": {"provinsi":"Jawa Barat","kabupaten":"Bandung","kecamatan":"Coblong","kelurahan":"Dago","detail":"Jl. Dago 1"},
	"items": [{"product_id":"2f1c2f7e-8a43-4b1e-9d0a-3f7d2f9d5b11","qty":2}]
}`

func TestHealth(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestPlaceOrder(t *testing.T) {
	user := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("created", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)

		order := &entity.Order{
			OrderNumber: 1813298712430006272,
			Status:      entity.OrderStatusWaitingPayment,
			DeliveryFee: 10000,
			UserID:      user.ID,
			Items:       []entity.OrderItem{{Name: "Kopi", Price: 25000, Qty: 2}},
		}
		invoice := &entity.Invoice{OrderNumber: order.OrderNumber, SubTotal: 50000, DeliveryFee: 10000, Total: 60000, PaymentStatus: entity.PaymentStatusUnpaid}

		a.orders.EXPECT().
			PlaceOrder(mock.Anything, user, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
				return in.DeliveryFee == 10000 && len(in.Items) == 1 && in.Items[0].Qty == 2 &&
					in.DeliveryAddress.Kelurahan == "Dago"
			})).
			Return(&usecase.PlaceOrderOutput{Order: order, Invoice: invoice}, nil)

		rec := a.do(http.MethodPost, "/api/v1/orders", validOrderBody, "user-token")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body struct {
			Data handler.PlaceOrderResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "1813298712430006272", body.Data.Order.OrderNumber)
		assert.Equal(t, int64(2), body.Data.Order.ItemsCount)
		assert.Equal(t, int64(60000), body.Data.Invoice.Total)
		assert.Equal(t, "unpaid", body.Data.Invoice.PaymentStatus)
	})

	t.Run("validation failure", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)

		rec := a.do(http.MethodPost, "/api/v1/orders", `{"delivery_fee":-5,"items":[]}`, "user-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("quantity above limit", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)

		body := strings.Replace(validOrderBody, `"qty":2`, `"qty":1000000000000000`, 1)
		rec := a.do(http.MethodPost, "/api/v1/orders", body, "user-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("guest is denied by policy", func(t *testing.T) {
		a := newTestAPI(t)
		a.orders.EXPECT().PlaceOrder(mock.Anything, entity.Anonymous(), mock.Anything).
			Return(nil, domainerrors.ErrForbidden.WrapMessage("create Order"))

		rec := a.do(http.MethodPost, "/api/v1/orders", validOrderBody, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		a := newTestAPI(t)
		a.tokens.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token expired"))

		rec := a.do(http.MethodPost, "/api/v1/orders", validOrderBody, "stale")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrderReads(t *testing.T) {
	user := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("list with paging", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.orders.EXPECT().ListOrders(mock.Anything, user, 5, 10).
			Return(&usecase.OrderPage{Orders: []*entity.Order{{OrderNumber: 7}}, Total: 11}, nil)

		rec := a.do(http.MethodGet, "/api/v1/orders?limit=5&offset=10", "", "user-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []handler.OrderDTO `json:"data"`
			Meta response.MetaInfo  `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, int64(11), *body.Meta.Total)
		assert.Equal(t, 5, body.Meta.Limit)
	})

	t.Run("not found", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.orders.EXPECT().GetOrder(mock.Anything, user, int64(404)).Return(nil, domainerrors.ErrOrderNotFound)

		rec := a.do(http.MethodGet, "/api/v1/orders/404", "", "user-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad order number", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)

		rec := a.do(http.MethodGet, "/api/v1/orders/abc", "", "user-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ORDER_NUMBER", errorCode(t, rec))
	})
}

func TestInvoiceEndpoints(t *testing.T) {
	user := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("initiate payment", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.invoices.EXPECT().InitiatePayment(mock.Anything, user, int64(1001)).
			Return(&service.PaymentSession{Token: "snap-token", RedirectURL: "https://pay.example/snap-token"}, nil)

		rec := a.do(http.MethodPost, "/api/v1/invoices/1001/payment", "", "user-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redirect_url":"https://pay.example/snap-token"`)
	})

	t.Run("gateway unavailable hides details", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.invoices.EXPECT().InitiatePayment(mock.Anything, user, int64(1001)).
			Return(nil, domainerrors.ErrGatewayUnavailable.WithDetails("dial tcp: i/o timeout"))

		rec := a.do(http.MethodPost, "/api/v1/invoices/1001/payment", "", "user-token")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "i/o timeout")
	})

	t.Run("already paid", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.invoices.EXPECT().InitiatePayment(mock.Anything, user, int64(1001)).Return(nil, domainerrors.ErrInvoiceAlreadyPaid)

		rec := a.do(http.MethodPost, "/api/v1/invoices/1001/payment", "", "user-token")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("read", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("user-token", user)
		a.invoices.EXPECT().GetInvoice(mock.Anything, user, int64(1001)).
			Return(&entity.Invoice{OrderNumber: 1001, Total: 60000, PaymentStatus: entity.PaymentStatusPaid}, nil)

		rec := a.do(http.MethodGet, "/api/v1/invoices/1001", "", "user-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"payment_status":"paid"`)
	})
}

func TestPaymentNotification_AlwaysAcknowledged(t *testing.T) {
	payload := `{"order_id":"1001","transaction_status":"settlement","signature_key":"forged"}`

	for name, err := range map[string]error{
		"settled":  nil,
		"rejected": errors.New("notification signature mismatch"),
	} {
		t.Run(name, func(t *testing.T) {
			a := newTestAPI(t)
			a.notification.EXPECT().HandleNotification(mock.Anything, []byte(payload)).Return(err)

			rec := a.do(http.MethodPost, "/api/v1/payments/notification", payload, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "success", rec.Body.String())
		})
	}
}

func TestAdminEndpoints(t *testing.T) {
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("list rejected settlements", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("admin-token", admin)
		a.settlement.EXPECT().ListRecords(mock.Anything, admin, entity.SettlementOutcomeRejected, 0, 0).
			Return([]*entity.SettlementRecord{{OrderKey: "1001", Outcome: entity.SettlementOutcomeRejected, Reason: "unknown order"}}, nil)

		rec := a.do(http.MethodGet, "/api/v1/admin/settlements?outcome=rejected", "", "admin-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reason":"unknown order"`)
	})

	t.Run("unknown outcome", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("admin-token", admin)

		rec := a.do(http.MethodGet, "/api/v1/admin/settlements?outcome=lost", "", "admin-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reconcile order", func(t *testing.T) {
		a := newTestAPI(t)
		a.loginAs("admin-token", admin)
		a.settlement.EXPECT().ReconcileOrder(mock.Anything, admin, int64(1001)).Return(entity.SettlementOutcomeApplied, nil)

		rec := a.do(http.MethodPost, "/api/v1/admin/orders/1001/reconcile", "", "admin-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"outcome":"applied"`)
	})
}
