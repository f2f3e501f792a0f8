package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "eventhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "reuses caller id", header: "req-from-client", wantReused: true},
		{name: "generates when absent", header: ""},
		{name: "generates when oversized", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/events/1", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))

			respID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, respID, ctxID)
			assert.Equal(t, respID, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
			if tt.wantReused {
				assert.Equal(t, tt.header, respID)
			} else {
				_, err := uuid.Parse(respID)
				assert.NoError(t, err)
			}
		})
	}
}
