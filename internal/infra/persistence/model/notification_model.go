package model

import (
	"time"

	"github.com/google/uuid"
)

// EventNotificationModel is the GORM-specific struct for the 'event_notifications' table.
// It represents one update published for an event.
type EventNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Detail    string    `gorm:"type:text;not null"`
	FromAdmin bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventNotificationModel) TableName() string {
	return "event_notifications"
}

// UserNotificationModel is the GORM-specific struct for the 'user_notifications' table.
// It represents the copy of an event notification materialised for one participant.
type UserNotificationModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_notifications_user_notification"`
	EventNotificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_notifications_user_notification;index"`
	IsRead              bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time

	EventNotification *EventNotificationModel `gorm:"foreignKey:EventNotificationID"`
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationModel) TableName() string {
	return "user_notifications"
}
