package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/pubsub"
	mockUC "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, audience string) (*PushHandler, *mockUC.MockPushUsecase) {
	pushUC := mockUC.NewMockPushUsecase(t)
	cfg := &config.Config{Push: &config.PushConfig{PushAudience: audience}}
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: pushUC,
	})

	return h, pushUC
}

func pushRequest(t *testing.T, event *service.NotificationEvent) *http.Request {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event)
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.NotificationEvent{
		RequestID:           "req-from-api",
		EventNotificationID: "7b0f8f3e-2a7c-4df5-9d6c-0c2a1b1c9f10",
		EventID:             "0e9f6a0c-8e3e-4c55-9b7e-3c0b7d2f1a22",
		RecipientCount:      2,
	}

	tests := []struct {
		name       string
		result     *usecase.DispatchResult
		err        error
		wantStatus int
	}{
		{
			name:       "delivered",
			result:     &usecase.DispatchResult{Recipients: 2, Sent: 2},
			wantStatus: http.StatusOK,
		},
		{
			name:       "retryable failure asks for redelivery",
			err:        usecase.NewRetryableError(errors.New("connection reset")),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "permanent failure is acknowledged",
			err:        errors.New("invalid event notification id"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushUC := createTestPushHandler(t, "")
			pushUC.EXPECT().
				Deliver(mock.Anything, mock.MatchedBy(func(got *service.NotificationEvent) bool {
					return *got == *event
				})).
				RunAndReturn(func(ctx context.Context, _ *service.NotificationEvent) (*usecase.DispatchResult, error) {
					assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))

					return tt.result, tt.err
				})

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(pushRequest(t, event), rec)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	h, _ := createTestPushHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"not base64!"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	event := &service.NotificationEvent{EventNotificationID: "n1", EventID: "e1"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, "https://worker.example.com/push")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(pushRequest(t, event), rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, "https://worker.example.com/push")
		h.validate = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://issuer.example.com"}, nil
		}
		req := pushRequest(t, event)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google token for our audience", func(t *testing.T) {
		h, pushUC := createTestPushHandler(t, "https://worker.example.com/push")
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "https://worker.example.com/push", audience)

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		pushUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(&usecase.DispatchResult{}, nil)

		req := pushRequest(t, event)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
