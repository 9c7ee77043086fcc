package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-upstream")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "req-upstream", deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLogger(ctx).Info("inside")

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "req-upstream", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=req-upstream")
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.Default())
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := mw.Process(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Response().Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(debug bool, handler echo.HandlerFunc) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), httptest.NewRecorder())
		_ = mw.Handle(handler)(c)

		return buf.String()
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	notFound := func(c echo.Context) error { return c.NoContent(http.StatusNotFound) }
	failing := func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) }

	assert.Empty(t, run(false, ok))
	assert.Contains(t, run(true, ok), "status=200")
	assert.Contains(t, run(false, notFound), "level=WARN")
	out := run(false, failing)
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status=502")
	assert.Contains(t, out, "role=guest")
}
