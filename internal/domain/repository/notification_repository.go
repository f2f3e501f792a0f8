// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when an event notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrUserNotificationNotFound is returned when a per-user notification is not found.
	ErrUserNotificationNotFound = errors.New("user notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateEventNotification persists a new event notification.
	CreateEventNotification(ctx context.Context, notification *entity.EventNotification) error

	// FindEventNotificationByID retrieves an event notification by its unique ID.
	FindEventNotificationByID(ctx context.Context, id uuid.UUID) (*entity.EventNotification, error)

	// BatchCreateUserNotifications persists per-user notifications in batches.
	BatchCreateUserNotifications(ctx context.Context, notifications []*entity.UserNotification) error

	// ListUserNotifications retrieves a user's notifications, newest first.
	ListUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error)

	// MarkAsRead flags a user's notification as read.
	MarkAsRead(ctx context.Context, userID, userNotificationID uuid.UUID) error

	// FindPushRecipients lists the recipients of a notification that hold a push token.
	FindPushRecipients(ctx context.Context, eventNotificationID uuid.UUID) ([]*entity.PushRecipient, error)
}
