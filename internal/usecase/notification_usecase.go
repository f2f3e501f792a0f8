package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput is an organizer's update for an event.
type CreateNotificationInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Detail  string
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// CreateEventNotification records the notification, fans it out to current participants and queues push delivery.
	CreateEventNotification(ctx context.Context, input *CreateNotificationInput) (*entity.EventNotification, error)

	// CreateAdminNotification does the same on behalf of staff, without the organizer check.
	CreateAdminNotification(ctx context.Context, eventID uuid.UUID, detail string) (*entity.EventNotification, error)

	ListUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error)

	MarkNotificationRead(ctx context.Context, userID, userNotificationID uuid.UUID) error
}
