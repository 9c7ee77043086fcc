package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockSettlementUsecase) {
	t.Helper()

	settlementUC := mockUsecase.NewMockSettlementUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		SettlementUC: settlementUC,
	})

	return h, settlementUC
}

func pushBody(t *testing.T, event *service.SettlementEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	event := &service.SettlementEvent{
		RequestID:         "req-from-event",
		OrderKey:          "1001",
		TransactionStatus: entity.TransactionStatusSettlement,
	}
	notification := &entity.SettlementNotification{OrderKey: "1001", TransactionStatus: entity.TransactionStatusSettlement}

	t.Run("applied is acknowledged", func(t *testing.T) {
		h, settlementUC := newTestHandler(t, cfg)
		settlementUC.EXPECT().Reconcile(mock.Anything, notification).
			RunAndReturn(func(ctx context.Context, _ *entity.SettlementNotification) (entity.SettlementOutcome, error) {
				assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

				return entity.SettlementOutcomeApplied, nil
			})

		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected is acknowledged", func(t *testing.T) {
		h, settlementUC := newTestHandler(t, cfg)
		settlementUC.EXPECT().Reconcile(mock.Anything, notification).Return(entity.SettlementOutcomeRejected, nil)

		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("infrastructure failure requests redelivery", func(t *testing.T) {
		h, settlementUC := newTestHandler(t, cfg)
		settlementUC.EXPECT().Reconcile(mock.Anything, notification).Return("", errors.New("connection refused"))

		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable event is dropped", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := servePush(h, `{"message":{"data":"not-base64!"}}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("event without order key is dropped", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := servePush(h, pushBody(t, &service.SettlementEvent{TransactionStatus: "settlement"}), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := servePush(h, `{"message":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example/push"}

	event := &service.SettlementEvent{OrderKey: "1001", TransactionStatus: entity.TransactionStatusSettlement}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, event), http.Header{"Authorization": {"Bearer oidc"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token uses configured audience", func(t *testing.T) {
		h, settlementUC := newTestHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "oidc", token)
			assert.Equal(t, "https://worker.example/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		settlementUC.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(entity.SettlementOutcomeApplied, nil)

		rec := servePush(h, pushBody(t, event), http.Header{"Authorization": {"Bearer oidc"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	msg := &pubsub.PushMessage{}
	msg.Message.Attributes = map[string]string{pubsub.AttrRequestID: "from-attrs"}

	assert.Equal(t, "from-attrs", extractRequestID(context.Background(), msg, &service.SettlementEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-event", extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.SettlementEvent{RequestID: "from-event"}))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")
	assert.Equal(t, "from-ctx", extractRequestID(ctx, &pubsub.PushMessage{}, &service.SettlementEvent{}))
	assert.NotEmpty(t, extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.SettlementEvent{}))
}
