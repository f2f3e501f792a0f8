package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service           usecase.EventUsecase
	txManager         *mockRepo.MockTransactionManager
	eventRepo         *mockRepo.MockEventRepository
	participationRepo *mockRepo.MockParticipationRepository
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	participationRepo := mockRepo.NewMockParticipationRepository(t)

	return eventServiceFixtures{
		service: NewEventService(EventServiceParams{
			TxManager:         txManager,
			EventRepo:         eventRepo,
			ParticipationRepo: participationRepo,
			Logger:            newDiscardLogger(),
		}),
		txManager:         txManager,
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
	}
}

func TestEventService_JoinEvent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		capacity    int
		joined      bool
		count       int64
		createErr   error
		wantOutcome usecase.JoinOutcome
		wantErr     error
	}{
		{name: "joins when a spot is free", capacity: 2, count: 1, wantOutcome: usecase.JoinOutcomeJoined},
		{name: "already joined", capacity: 1, joined: true, wantOutcome: usecase.JoinOutcomeAlreadyJoined},
		{name: "full event", capacity: 2, count: 2, wantErr: domainerrors.ErrEventFull},
		{name: "zero capacity is always full", capacity: 0, count: 0, wantErr: domainerrors.ErrEventFull},
		{name: "unique violation on insert", capacity: 5, count: 1, createErr: repository.ErrAlreadyJoined, wantOutcome: usecase.JoinOutcomeAlreadyJoined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEventService(t)
			repos := newTxRepos(t)
			expectTx(fx.txManager, repos)

			repos.events.EXPECT().LockByID(ctx, eventID, repository.LockForUpdate).Return(&entity.Event{ID: eventID, Capacity: tt.capacity}, nil)
			repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			repos.participation.EXPECT().Exists(ctx, eventID, userID).Return(tt.joined, nil)
			if !tt.joined {
				repos.participation.EXPECT().CountByEvent(ctx, eventID).Return(tt.count, nil)
			}
			if !tt.joined && tt.count < int64(tt.capacity) {
				repos.participation.EXPECT().
					Create(ctx, mock.MatchedBy(func(p *entity.UserEvent) bool {
						return p.EventID == eventID && p.UserID == userID
					})).
					Return(tt.createErr)
			}

			outcome, err := fx.service.JoinEvent(ctx, eventID, userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, outcome)
		})
	}
}

func TestEventService_JoinEvent_NotFound(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	userID := uuid.New()

	t.Run("event", func(t *testing.T) {
		fx := createTestEventService(t)
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.events.EXPECT().LockByID(ctx, eventID, repository.LockForUpdate).Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.JoinEvent(ctx, eventID, userID)

		assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	})

	t.Run("user", func(t *testing.T) {
		fx := createTestEventService(t)
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.events.EXPECT().LockByID(ctx, eventID, repository.LockForUpdate).Return(&entity.Event{ID: eventID, Capacity: 3}, nil)
		repos.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.JoinEvent(ctx, eventID, userID)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestEventService(t)
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.events.EXPECT().LockByID(ctx, eventID, repository.LockForUpdate).Return(nil, errors.New("connection reset"))

		_, err := fx.service.JoinEvent(ctx, eventID, userID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestEventService_AvailableSpots(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	fx := createTestEventService(t)
	fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID, Capacity: 10}, nil)
	fx.participationRepo.EXPECT().CountByEvent(ctx, eventID).Return(int64(3), nil)

	spots, err := fx.service.AvailableSpots(ctx, eventID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), spots)

	missing := uuid.New()
	fx.eventRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrEventNotFound)

	_, err = fx.service.AvailableSpots(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_IsParticipant(t *testing.T) {
	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()

	fx := createTestEventService(t)
	fx.participationRepo.EXPECT().Exists(ctx, eventID, userID).Return(true, nil)

	in, err := fx.service.IsParticipant(ctx, eventID, userID)

	require.NoError(t, err)
	assert.True(t, in)
}

func TestEventService_GetEvent_CountsView(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	fx := createTestEventService(t)
	fx.eventRepo.EXPECT().IncrementViewCount(ctx, eventID).Return(nil)
	fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID, ViewCount: 4}, nil)

	event, err := fx.service.GetEvent(ctx, eventID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), event.ViewCount)

	missing := uuid.New()
	fx.eventRepo.EXPECT().IncrementViewCount(ctx, missing).Return(repository.ErrEventNotFound)

	_, err = fx.service.GetEvent(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	organizerID := uuid.New()
	locationID := uuid.New()
	eventID := uuid.New()

	fx := createTestEventService(t)
	repos := newTxRepos(t)
	expectTx(fx.txManager, repos)

	repos.users.EXPECT().FindByID(ctx, organizerID).Return(&entity.User{ID: organizerID}, nil)
	repos.events.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, event *entity.Event) error {
			assert.Equal(t, entity.EventStatusPlanned, event.Status)
			event.ID = eventID

			return nil
		})
	repos.events.EXPECT().AddOrganizer(ctx, &entity.EventOrganizer{EventID: eventID, UserID: organizerID}).Return(nil)
	repos.locations.EXPECT().FindByID(ctx, locationID).Return(&entity.Location{ID: locationID}, nil)
	repos.locations.EXPECT().AssignToEvent(ctx, eventID, locationID).Return(nil)

	event, err := fx.service.CreateEvent(ctx, organizerID, &usecase.CreateEventInput{
		Name:       "Go meetup",
		Capacity:   30,
		Duration:   2 * time.Hour,
		LocationID: &locationID,
	})

	require.NoError(t, err)
	assert.Equal(t, eventID, event.ID)
	assert.Equal(t, 30, event.Capacity)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	inputs := []*usecase.CreateEventInput{
		{Name: "", Capacity: 1},
		{Name: "negative", Capacity: -1},
		{Name: "bad status", Capacity: 1, Status: entity.EventStatus("archived")},
	}

	for _, input := range inputs {
		_, err := fx.service.CreateEvent(ctx, uuid.New(), input)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	organizerID := uuid.New()

	t.Run("organizer deletes", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
		fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, organizerID).Return(true, nil)
		fx.eventRepo.EXPECT().Delete(ctx, eventID).Return(nil)

		require.NoError(t, fx.service.DeleteEvent(ctx, organizerID, eventID))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		fx := createTestEventService(t)
		stranger := uuid.New()
		fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
		fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, stranger).Return(false, nil)

		err := fx.service.DeleteEvent(ctx, stranger, eventID)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	})
}
