package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location does not exist.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository manages locations and their user/event assignments.
type LocationRepository interface {
	// FindByID retrieves a location by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindWithCoordinates lists every location that has centre coordinates.
	FindWithCoordinates(ctx context.Context) ([]*entity.Location, error)

	// AssignToUser sets the user's home location, replacing any previous one.
	AssignToUser(ctx context.Context, userID, locationID uuid.UUID) error

	// AssignToEvent sets the event's location, replacing any previous one.
	AssignToEvent(ctx context.Context, eventID, locationID uuid.UUID) error
}
