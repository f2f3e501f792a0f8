package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlreadyJoined is returned when a participation for the (user, event) pair already exists.
var ErrAlreadyJoined = errors.New("user already joined event")

// ParticipationRepository defines persistence for event participation.
type ParticipationRepository interface {
	// Create persists a new participation.
	Create(ctx context.Context, participation *entity.UserEvent) error

	// Exists reports whether the user participates in the event.
	Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	// CountByEvent returns the number of participants of the event.
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// ListUserIDsByEvent returns the IDs of all current participants of the event.
	ListUserIDsByEvent(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}
