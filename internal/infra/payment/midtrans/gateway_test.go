package midtrans

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-test"

type fakeSnap struct {
	got   *snap.Request
	resp  *snap.Response
	err   *midtransgo.Error
	delay time.Duration
}

func (f *fakeSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtransgo.Error) {
	f.got = req
	time.Sleep(f.delay)

	return f.resp, f.err
}

type fakeCore struct {
	resp *coreapi.TransactionStatusResponse
	err  *midtransgo.Error
}

func (f *fakeCore) CheckTransaction(string) (*coreapi.TransactionStatusResponse, *midtransgo.Error) {
	return f.resp, f.err
}

func newTestGateway(s snapAPI, c statusAPI) *gateway {
	return &gateway{
		serverKey: testServerKey,
		timeout:   time.Second,
		snap:      s,
		core:      c,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func signedPayload(t *testing.T, orderID, status, fraud, key string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"order_id":           orderID,
		"status_code":        "200",
		"gross_amount":       "125000.00",
		"transaction_status": status,
		"fraud_status":       fraud,
		"signature_key":      signature(orderID, "200", "125000.00", key),
	})
	require.NoError(t, err)

	return body
}

func TestNewGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewGateway(GatewayParams{Config: &config.Config{}, Logger: logger})
	assert.Error(t, err)

	gw, err := NewGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{ServerKey: testServerKey}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, gw.(*gateway).timeout)
}

func TestNewGateway_ClientsUseGatewayTimeout(t *testing.T) {
	gw, err := NewGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{ServerKey: testServerKey, Timeout: 3 * time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	snapClient, ok := gw.(*gateway).snap.(*snap.Client)
	require.True(t, ok)
	snapHTTP, ok := snapClient.HttpClient.(*midtransgo.HttpClientImplementation)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, snapHTTP.HttpClient.Timeout)

	coreClient, ok := gw.(*gateway).core.(*coreapi.Client)
	require.True(t, ok)
	coreHTTP, ok := coreClient.HttpClient.(*midtransgo.HttpClientImplementation)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, coreHTTP.HttpClient.Timeout)
	assert.NotSame(t, midtransgo.DefaultGoHttpClient, coreHTTP.HttpClient)
}

func TestSignature(t *testing.T) {
	sig := signature("1001", "200", "125000.00", testServerKey)
	assert.Len(t, sig, 128)
	assert.Equal(t, sig, signature("1001", "200", "125000.00", testServerKey))
	assert.NotEqual(t, sig, signature("1001", "200", "125001.00", testServerKey))
}

func TestVerifyNotification(t *testing.T) {
	gw := newTestGateway(&fakeSnap{}, &fakeCore{})

	t.Run("valid signature", func(t *testing.T) {
		n, err := gw.VerifyNotification(context.Background(), signedPayload(t, "1001", "capture", "accept", testServerKey))
		require.NoError(t, err)
		assert.Equal(t, "1001", n.OrderKey)
		assert.Equal(t, "capture", n.TransactionStatus)
		assert.Equal(t, "accept", n.FraudStatus)
	})

	t.Run("uppercase signature accepted", func(t *testing.T) {
		var body map[string]string
		require.NoError(t, json.Unmarshal(signedPayload(t, "1001", "settlement", "", testServerKey), &body))
		body["signature_key"] = strings.ToUpper(body["signature_key"])
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		_, err = gw.VerifyNotification(context.Background(), payload)
		assert.NoError(t, err)
	})

	t.Run("forged signature keeps parsed fields", func(t *testing.T) {
		n, err := gw.VerifyNotification(context.Background(), signedPayload(t, "1001", "settlement", "", "wrong-key"))
		assert.ErrorContains(t, err, "signature mismatch")
		require.NotNil(t, n)
		assert.Equal(t, "1001", n.OrderKey)
	})

	t.Run("malformed payload", func(t *testing.T) {
		n, err := gw.VerifyNotification(context.Background(), []byte("{"))
		assert.Error(t, err)
		assert.Nil(t, n)
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := gw.VerifyNotification(context.Background(), []byte(`{"order_id":"1001","transaction_status":"settlement"}`))
		assert.Error(t, err)
	})
}

func TestVerifyNotification_StatusReconfirmation(t *testing.T) {
	core := &fakeCore{resp: &coreapi.TransactionStatusResponse{TransactionStatus: "pending"}}
	gw := newTestGateway(&fakeSnap{}, core)
	gw.verifyWithStatus = true

	n, err := gw.VerifyNotification(context.Background(), signedPayload(t, "1001", "settlement", "", testServerKey))
	require.NoError(t, err)
	assert.Equal(t, "pending", n.TransactionStatus, "status API is authoritative")

	core.resp, core.err = nil, &midtransgo.Error{Message: "not found", StatusCode: 404}
	_, err = gw.VerifyNotification(context.Background(), signedPayload(t, "1001", "settlement", "", testServerKey))
	assert.ErrorContains(t, err, "re-confirmation")
}

func TestCreateTransaction(t *testing.T) {
	s := &fakeSnap{resp: &snap.Response{Token: "tok", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok"}}
	gw := newTestGateway(s, &fakeCore{})

	session, err := gw.CreateTransaction(context.Background(), service.PaymentRequest{
		OrderKey:      "1001",
		GrossAmount:   125000,
		CustomerName:  "Siti",
		CustomerEmail: "siti@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, &service.PaymentSession{Token: "tok", RedirectURL: s.resp.RedirectURL}, session)

	assert.Equal(t, "1001", s.got.TransactionDetails.OrderID)
	assert.Equal(t, int64(125000), s.got.TransactionDetails.GrossAmt)
	assert.True(t, s.got.CreditCard.Secure)
	assert.Equal(t, "siti@example.com", s.got.CustomerDetail.Email)
}

func TestCreateTransaction_Failures(t *testing.T) {
	t.Run("sdk error", func(t *testing.T) {
		gw := newTestGateway(&fakeSnap{err: &midtransgo.Error{Message: "bad request", StatusCode: 400}}, &fakeCore{})
		_, err := gw.CreateTransaction(context.Background(), service.PaymentRequest{OrderKey: "1"})
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		gw := newTestGateway(&fakeSnap{resp: &snap.Response{Token: "tok"}, delay: 200 * time.Millisecond}, &fakeCore{})
		gw.timeout = 10 * time.Millisecond
		_, err := gw.CreateTransaction(context.Background(), service.PaymentRequest{OrderKey: "1"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("empty token", func(t *testing.T) {
		gw := newTestGateway(&fakeSnap{resp: &snap.Response{}}, &fakeCore{})
		_, err := gw.CreateTransaction(context.Background(), service.PaymentRequest{OrderKey: "1"})
		assert.Error(t, err)
	})
}

func TestTransactionStatus(t *testing.T) {
	gw := newTestGateway(&fakeSnap{}, &fakeCore{resp: &coreapi.TransactionStatusResponse{
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	}})

	n, err := gw.TransactionStatus(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", n.OrderKey)
	assert.Equal(t, "capture", n.TransactionStatus)
	assert.Equal(t, "challenge", n.FraudStatus)
}
