package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/event-notification-push"

// localHTTPPublisher posts events to the push worker in the same envelope
// Google Pub/Sub push subscriptions use, so the worker handler is shared.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body of a Pub/Sub push request.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps event as a push message.
func NewPushEnvelope(event *service.NotificationEvent) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: localSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.MessageID = event.EventNotificationID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	env.Message.Attributes = map[string]string{
		"event_notification_id": event.EventNotificationID,
		"event_id":              event.EventID,
	}
	if event.RequestID != "" {
		env.Message.Attributes["request_id"] = event.RequestID
	}

	return env, nil
}

// DecodeEvent extracts the notification event carried by the envelope.
func (e *PushEnvelope) DecodeEvent() (*service.NotificationEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal notification event")
	}
	if event.RequestID == "" {
		event.RequestID = e.Message.Attributes["request_id"]
	}

	return &event, nil
}

// NewLocalHTTPPublisher creates a publisher that POSTs to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	env, err := NewPushEnvelope(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_notification_id", event.EventNotificationID),
		slog.Int("recipient_count", event.RecipientCount),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
