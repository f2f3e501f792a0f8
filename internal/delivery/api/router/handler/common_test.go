package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/validator"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
	Page *struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Count  int `json:"count"`
	} `json:"page"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

type testRequest struct {
	method string
	target string
	body   string
	params map[string]string
	caller *uuid.UUID
	roles  []string
}

// serve runs h against req the way the router would, rendering returned errors.
func serve(t *testing.T, h echo.HandlerFunc, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	httpReq := httptest.NewRequest(req.method, req.target, body)
	if req.body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	names := make([]string, 0, len(req.params))
	values := make([]string, 0, len(req.params))
	for name, value := range req.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	deliverycontext.SetRequestID(c, "req-1")
	if req.caller != nil {
		deliverycontext.SetPrincipal(c, *req.caller, req.roles)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return &env
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error, "expected an error envelope, got %s", rec.Body.String())

	return env.Error.Code
}

func ptr[T any](v T) *T {
	return &v
}
