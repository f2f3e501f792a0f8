package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event does not exist.
var ErrEventNotFound = errors.New("event not found")

// LockMode selects the row lock taken by EventRepository.LockByID.
type LockMode string

const (
	// LockForUpdate blocks other writers and lockers until the transaction ends.
	LockForUpdate LockMode = "UPDATE"
	// LockForShare blocks writers and FOR UPDATE lockers but not other sharers.
	LockForShare LockMode = "SHARE"
)

// EventRepository defines persistence for events and their organizers.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves an event by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// LockByID reads an event from the primary while holding a row lock.
	// It must be called inside a transaction.
	LockByID(ctx context.Context, id uuid.UUID, mode LockMode) (*entity.Event, error)

	// IncrementViewCount atomically adds one to the event's view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// Delete removes an event; organizers, participations and notifications cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddOrganizer binds an organizing user to the event.
	AddOrganizer(ctx context.Context, organizer *entity.EventOrganizer) error

	// IsOrganizer reports whether the user organizes the event.
	IsOrganizer(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	// FindRecommended lists events at the given locations that the user has not joined.
	FindRecommended(ctx context.Context, locationIDs []uuid.UUID, userID uuid.UUID, limit int) ([]*entity.Event, error)
}
