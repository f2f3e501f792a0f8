package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives Pub/Sub push deliveries of notification events.
type PushHandler struct {
	audience string
	validate TokenValidator
	pushUC   usecase.PushUsecase
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. OIDC verification is on when push.pushAudience is set.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		pushUC:   params.PushUC,
		logger:   params.Logger,
	}
	if params.Config.Push != nil {
		h.audience = params.Config.Push.PushAudience
	}

	return h
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers, 400 for malformed
// messages and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, extractRequestID(ctx, event), h.logger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("event_notification_id", event.EventNotificationID),
		slog.String("event_id", event.EventID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	result, err := h.pushUC.Deliver(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process notification",
			slog.String("event_notification_id", event.EventNotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Notification processed",
		slog.String("event_notification_id", event.EventNotificationID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's request ID, then the X-Request-Id header, then a new one.
func extractRequestID(ctx context.Context, event *service.NotificationEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken checks the OIDC token Pub/Sub attaches to authenticated push subscriptions.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(ctx context.Context, authHeader string) error {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}

	payload, err := h.validate(ctx, strings.TrimPrefix(authHeader, bearerPrefix), h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
