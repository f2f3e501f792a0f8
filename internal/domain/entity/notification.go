// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventNotification is a broadcast message attached to one event.
type EventNotification struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	EventID   uuid.UUID `json:"event_id"`   // The event the message is about.
	Detail    string    `json:"detail"`     // Message text.
	FromAdmin bool      `json:"from_admin"` // True when sent by staff instead of the organizer.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the notification was created.
}

// UserNotification is the per-participant delivery record of an EventNotification.
type UserNotification struct {
	ID                  uuid.UUID          `json:"id"`
	UserID              uuid.UUID          `json:"user_id"`
	EventNotificationID uuid.UUID          `json:"event_notification_id"`
	IsRead              bool               `json:"is_read"`
	CreatedAt           time.Time          `json:"created_at"`
	EventNotification   *EventNotification `json:"event_notification,omitempty"` // Populated by list queries.
}

// PushRecipient is a participant that holds a push token for a given notification.
type PushRecipient struct {
	UserID    uuid.UUID
	PushToken string
}
