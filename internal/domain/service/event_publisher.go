package service

import (
	"context"
)

// NotificationEvent represents a materialised event notification waiting for push delivery.
type NotificationEvent struct {
	RequestID           string `json:"request_id,omitempty"` // For distributed tracing
	EventNotificationID string `json:"event_notification_id"`
	EventID             string `json:"event_id"`
	RecipientCount      int    `json:"recipient_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// NotificationDispatcher consumes notification events on the worker side.
type NotificationDispatcher interface {
	DispatchNotification(ctx context.Context, event *NotificationEvent) error
}
