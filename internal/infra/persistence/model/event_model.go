package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. Duration is stored in seconds.
type EventModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text;not null;default:''"`
	Capacity        int       `gorm:"not null;check:capacity >= 0"`
	DurationSeconds int64     `gorm:"not null;default:0"`
	Address         string    `gorm:"type:text;not null;default:''"`
	Status          string    `gorm:"type:varchar(20);not null;default:'planned'"`
	ViewCount       int64     `gorm:"not null;default:0"`
	IsFeatured      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	EventLocation *EventLocationModel `gorm:"foreignKey:EventID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventLocationModel mirrors the 'event_locations' table.
type EventLocationModel struct {
	EventID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (EventLocationModel) TableName() string {
	return "event_locations"
}

// EventOrganizerModel mirrors the 'event_organizers' table.
type EventOrganizerModel struct {
	EventID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (EventOrganizerModel) TableName() string {
	return "event_organizers"
}

// UserEventModel mirrors the 'user_events' participation table.
type UserEventModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_events_user_event"`
	EventID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_events_user_event;index"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserEventModel) TableName() string {
	return "user_events"
}
