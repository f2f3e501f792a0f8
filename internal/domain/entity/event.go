package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusPlanned   EventStatus = "planned"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPlanned, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// Event is a gathering users can join up to its capacity.
type Event struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Capacity    int           `json:"capacity"` // Maximum number of participants, never negative.
	Duration    time.Duration `json:"duration"`
	Address     string        `json:"address"`
	Status      EventStatus   `json:"status"`
	ViewCount   int64         `json:"view_count"`
	IsFeatured  bool          `json:"is_featured"`
	LocationID  *uuid.UUID    `json:"location_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AvailableSpots returns capacity minus the given participant count. The result is negative
// only when capacity was lowered below current enrollment.
func (e *Event) AvailableSpots(participants int64) int64 {
	return int64(e.Capacity) - participants
}

// IsFull reports whether another participant would exceed capacity.
func (e *Event) IsFull(participants int64) bool {
	return participants >= int64(e.Capacity)
}

// EventOrganizer binds an organizing user to an event.
type EventOrganizer struct {
	EventID uuid.UUID
	UserID  uuid.UUID
}

// UserEvent is a user's participation in an event.
type UserEvent struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	EventID  uuid.UUID
	JoinedAt time.Time
}
