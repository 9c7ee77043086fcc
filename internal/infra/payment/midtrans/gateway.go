// Package midtrans adapts the Midtrans Snap and Core APIs to the PaymentGateway port.
package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 15 * time.Second

// snapAPI is the subset of snap.Client used to open payment sessions.
type snapAPI interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtransgo.Error)
}

// statusAPI is the subset of coreapi.Client used to query transactions.
type statusAPI interface {
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtransgo.Error)
}

// notificationPayload is the part of the webhook body the reconciler relies on.
type notificationPayload struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type gateway struct {
	serverKey        string
	timeout          time.Duration
	verifyWithStatus bool
	snap             snapAPI
	core             statusAPI
	logger           *slog.Logger
}

// GatewayParams holds dependencies for the Midtrans gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway builds the gateway for the configured environment.
func NewGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil || cfg.ServerKey == "" {
		return nil, errors.New("payment server key must be provided")
	}

	env := midtransgo.Sandbox
	if cfg.IsProduction {
		env = midtransgo.Production
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var snapClient snap.Client
	snapClient.New(cfg.ServerKey, env)
	snapClient.HttpClient = newHTTPClient(env, timeout)

	var coreClient coreapi.Client
	coreClient.New(cfg.ServerKey, env)
	coreClient.HttpClient = newHTTPClient(env, timeout)

	return &gateway{
		serverKey:        cfg.ServerKey,
		timeout:          timeout,
		verifyWithStatus: cfg.VerifyWithStatusAPI,
		snap:             &snapClient,
		core:             &coreClient,
		logger:           params.Logger,
	}, nil
}

// newHTTPClient gives each SDK client its own transport deadline, so a call
// abandoned by withTimeout is still cut off by the transport.
func newHTTPClient(env midtransgo.EnvironmentType, timeout time.Duration) *midtransgo.HttpClientImplementation {
	client := midtransgo.GetHttpClient(env)
	client.HttpClient = &http.Client{Timeout: timeout}

	return client
}

func (g *gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// CreateTransaction opens a Snap session with 3DS enforced for cards.
func (g *gateway) CreateTransaction(ctx context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  req.OrderKey,
			GrossAmt: req.GrossAmount,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		CustomerDetail: &midtransgo.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
	}

	resp, err := withTimeout(ctx, g.timeout, func() (*snap.Response, error) {
		resp, mErr := g.snap.CreateTransaction(snapReq)
		if mErr != nil {
			return nil, errors.Wrap(mErr, "snap create transaction")
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Token == "" {
		return nil, errors.New("snap returned no token")
	}

	g.log(ctx).Info("Payment session created",
		slog.String("order_key", req.OrderKey),
		slog.Int64("gross_amount", req.GrossAmount),
	)

	return &service.PaymentSession{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// VerifyNotification checks the webhook signature. When a payload parses but
// fails verification, the parsed fields are returned with the error so the
// rejection can be recorded against the order key.
func (g *gateway) VerifyNotification(ctx context.Context, payload []byte) (*entity.SettlementNotification, error) {
	var body notificationPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errors.Wrap(err, "malformed notification payload")
	}

	notification := &entity.SettlementNotification{
		OrderKey:          body.OrderID,
		TransactionStatus: body.TransactionStatus,
		FraudStatus:       body.FraudStatus,
	}

	if body.OrderID == "" || body.SignatureKey == "" {
		return notification, errors.New("notification is missing order id or signature")
	}

	expected := signature(body.OrderID, body.StatusCode, body.GrossAmount, g.serverKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(body.SignatureKey))) != 1 {
		return notification, errors.New("notification signature mismatch")
	}

	if !g.verifyWithStatus {
		return notification, nil
	}

	confirmed, err := g.TransactionStatus(ctx, body.OrderID)
	if err != nil {
		return notification, errors.Wrap(err, "status re-confirmation failed")
	}

	return confirmed, nil
}

// TransactionStatus queries the Core API for the order's latest transaction state.
func (g *gateway) TransactionStatus(ctx context.Context, orderKey string) (*entity.SettlementNotification, error) {
	resp, err := withTimeout(ctx, g.timeout, func() (*coreapi.TransactionStatusResponse, error) {
		resp, mErr := g.core.CheckTransaction(orderKey)
		if mErr != nil {
			return nil, errors.Wrap(mErr, "check transaction")
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.SettlementNotification{
		OrderKey:          orderKey,
		TransactionStatus: resp.TransactionStatus,
		FraudStatus:       resp.FraudStatus,
	}, nil
}

// signature is the Midtrans notification signature: hex SHA-512 over
// order_id, status_code, gross_amount and the server key.
func signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))

	return hex.EncodeToString(sum[:])
}

// withTimeout bounds a blocking SDK call. The call itself keeps running after
// the deadline until the client's own timeout; its result is discarded.
func withTimeout[T any](ctx context.Context, timeout time.Duration, call func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := call()
		done <- result{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		var zero T

		return zero, errors.Wrap(ctx.Err(), "payment gateway call timed out")
	}
}
