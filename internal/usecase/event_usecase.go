package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// JoinOutcome distinguishes a new participation from a repeated join.
type JoinOutcome string

const (
	JoinOutcomeJoined        JoinOutcome = "joined"
	JoinOutcomeAlreadyJoined JoinOutcome = "already_joined"
)

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Name        string
	Description string
	Capacity    int
	Duration    time.Duration
	Address     string
	Status      entity.EventStatus
	IsFeatured  bool
	LocationID  *uuid.UUID
}

// EventUsecase defines event management and participation.
type EventUsecase interface {
	// CreateEvent stores the event and makes organizerID its organizer.
	CreateEvent(ctx context.Context, organizerID uuid.UUID, input *CreateEventInput) (*entity.Event, error)

	// GetEvent returns the event after counting the view.
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)

	DeleteEvent(ctx context.Context, callerID, eventID uuid.UUID) error

	// JoinEvent adds userID as a participant unless the event is at capacity.
	JoinEvent(ctx context.Context, eventID, userID uuid.UUID) (JoinOutcome, error)

	IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	AvailableSpots(ctx context.Context, eventID uuid.UUID) (int64, error)
}
