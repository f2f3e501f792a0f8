package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	txManager         repository.TransactionManager
	eventRepo         repository.EventRepository
	participationRepo repository.ParticipationRepository
	logger            *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	EventRepo         repository.EventRepository
	ParticipationRepo repository.ParticipationRepository
	Logger            *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager:         params.TxManager,
		eventRepo:         params.EventRepo,
		participationRepo: params.ParticipationRepo,
		logger:            params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent stores the event, registers the organizer and attaches the optional location in one transaction.
func (srv *eventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, input *usecase.CreateEventInput) (*entity.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Capacity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("capacity must not be negative")
	}

	status := input.Status
	if status == "" {
		status = entity.EventStatusPlanned
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown event status")
	}

	event := &entity.Event{
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		Duration:    input.Duration,
		Address:     input.Address,
		Status:      status,
		IsFeatured:  input.IsFeatured,
		LocationID:  input.LocationID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, organizerID); err != nil {
			return err
		}

		if err := repoFactory.EventRepo().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		if err := repoFactory.EventRepo().AddOrganizer(ctx, &entity.EventOrganizer{EventID: event.ID, UserID: organizerID}); err != nil {
			return errors.Wrap(err, "failed to add organizer")
		}

		if input.LocationID == nil {
			return nil
		}

		if _, err := repoFactory.LocationRepo().FindByID(ctx, *input.LocationID); err != nil {
			return err
		}

		return repoFactory.LocationRepo().AssignToEvent(ctx, event.ID, *input.LocationID)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrLocationNotFound):
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to execute create event transaction")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.Any("organizerID", organizerID))

	return event, nil
}

// GetEvent counts the view atomically and returns the stored event.
func (srv *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	if err := srv.eventRepo.IncrementViewCount(ctx, eventID); err != nil {
		return nil, mapEventError(err)
	}

	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, mapEventError(err)
	}

	return event, nil
}

// DeleteEvent removes the event when callerID organizes it. Related rows cascade in the database.
func (srv *eventService) DeleteEvent(ctx context.Context, callerID, eventID uuid.UUID) error {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		return mapEventError(err)
	}

	isOrganizer, err := srv.eventRepo.IsOrganizer(ctx, eventID, callerID)
	if err != nil {
		return errors.Wrap(err, "failed to check organizer")
	}
	if !isOrganizer {
		return domainerrors.ErrForbidden.WithDetails("only organizer can delete event")
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		return mapEventError(err)
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", eventID), slog.Any("callerID", callerID))

	return nil
}

// JoinEvent serialises joins per event with a row lock so the capacity check and the insert see the same count.
func (srv *eventService) JoinEvent(ctx context.Context, eventID, userID uuid.UUID) (usecase.JoinOutcome, error) {
	var outcome usecase.JoinOutcome

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		event, err := repoFactory.EventRepo().LockByID(ctx, eventID, repository.LockForUpdate)
		if err != nil {
			return err
		}

		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return err
		}

		participationRepo := repoFactory.ParticipationRepo()
		joined, err := participationRepo.Exists(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if joined {
			outcome = usecase.JoinOutcomeAlreadyJoined

			return nil
		}

		count, err := participationRepo.CountByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if event.IsFull(count) {
			return domainerrors.ErrEventFull
		}

		if err := participationRepo.Create(ctx, &entity.UserEvent{EventID: eventID, UserID: userID}); err != nil {
			return err
		}
		outcome = usecase.JoinOutcomeJoined

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, repository.ErrAlreadyJoined):
		// The insert lost against a concurrent join of the same user.
		outcome = usecase.JoinOutcomeAlreadyJoined
	case errors.Is(err, repository.ErrEventNotFound):
		return "", domainerrors.ErrEventNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return "", domainerrors.ErrUserNotFound
	case errors.Is(err, domainerrors.ErrEventFull):
		srv.log(ctx).Info("Join rejected, event is full", slog.Any("eventID", eventID), slog.Any("userID", userID))

		return "", domainerrors.ErrEventFull
	default:
		srv.log(ctx).Error("Failed to join event", slog.Any("eventID", eventID), slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute join transaction")
	}

	srv.log(ctx).Info("Join handled", slog.Any("eventID", eventID), slog.Any("userID", userID), slog.String("outcome", string(outcome)))

	return outcome, nil
}

func (srv *eventService) IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	exists, err := srv.participationRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check participation")
	}

	return exists, nil
}

// AvailableSpots is capacity minus participants; negative only when capacity was lowered below the count.
func (srv *eventService) AvailableSpots(ctx context.Context, eventID uuid.UUID) (int64, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return 0, mapEventError(err)
	}

	count, err := srv.participationRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count participants")
	}

	return event.AvailableSpots(count), nil
}

func mapEventError(err error) error {
	if errors.Is(err, repository.ErrEventNotFound) {
		return domainerrors.ErrEventNotFound
	}

	return err
}
