package impl

import (
	"context"
	"testing"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	txManager        *mockRepo.MockTransactionManager
	eventRepo        *mockRepo.MockEventRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		eventRepo:        mockRepo.NewMockEventRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewNotificationService(NotificationServiceParams{
		TxManager:        fx.txManager,
		EventRepo:        fx.eventRepo,
		UserRepo:         fx.userRepo,
		NotificationRepo: fx.notificationRepo,
		Publisher:        fx.publisher,
		Logger:           newDiscardLogger(),
	})

	return fx
}

// expectFanout sets up the share-locked transaction that materialises one row per participant.
func expectFanout(t *testing.T, fx notificationServiceFixtures, eventID uuid.UUID, participants []uuid.UUID, notificationID uuid.UUID) {
	repos := newTxRepos(t)
	expectTx(fx.txManager, repos)

	repos.events.EXPECT().LockByID(mock.Anything, eventID, repository.LockForShare).Return(&entity.Event{ID: eventID}, nil)
	repos.notifications.EXPECT().
		CreateEventNotification(mock.Anything, mock.AnythingOfType("*entity.EventNotification")).
		RunAndReturn(func(_ context.Context, n *entity.EventNotification) error {
			n.ID = notificationID

			return nil
		})
	repos.participation.EXPECT().ListUserIDsByEvent(mock.Anything, eventID).Return(participants, nil)
	if len(participants) == 0 {
		return
	}
	repos.notifications.EXPECT().
		BatchCreateUserNotifications(mock.Anything, mock.MatchedBy(func(rows []*entity.UserNotification) bool {
			if len(rows) != len(participants) {
				return false
			}
			for i, row := range rows {
				if row.UserID != participants[i] || row.EventNotificationID != notificationID || row.IsRead {
					return false
				}
			}

			return true
		})).
		Return(nil)
}

func TestNotificationService_CreateEventNotification_FansOutAndPublishes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	eventID := uuid.New()
	organizerID := uuid.New()
	notificationID := uuid.New()
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
	fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, organizerID).Return(true, nil)
	expectFanout(t, fx, eventID, participants, notificationID)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, &service.NotificationEvent{
			RequestID:           "req-7",
			EventNotificationID: notificationID.String(),
			EventID:             eventID.String(),
			RecipientCount:      3,
		}).
		Return(nil)

	notification, err := fx.service.CreateEventNotification(ctx, &usecase.CreateNotificationInput{
		EventID: eventID,
		UserID:  organizerID,
		Detail:  "Venue moved to room 2",
	})

	require.NoError(t, err)
	assert.Equal(t, notificationID, notification.ID)
	assert.False(t, notification.FromAdmin)
	assert.Equal(t, "Venue moved to room 2", notification.Detail)
}

func TestNotificationService_CreateEventNotification_NoParticipantsSkipsPublish(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	eventID, organizerID := uuid.New(), uuid.New()

	fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
	fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, organizerID).Return(true, nil)
	expectFanout(t, fx, eventID, nil, uuid.New())

	_, err := fx.service.CreateEventNotification(ctx, &usecase.CreateNotificationInput{EventID: eventID, UserID: organizerID, Detail: "hi"})

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_CreateEventNotification_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	eventID, organizerID := uuid.New(), uuid.New()

	fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
	fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, organizerID).Return(true, nil)
	expectFanout(t, fx, eventID, []uuid.UUID{uuid.New()}, uuid.New())
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	notification, err := fx.service.CreateEventNotification(ctx, &usecase.CreateNotificationInput{EventID: eventID, UserID: organizerID, Detail: "hi"})

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_CreateEventNotification_Rejections(t *testing.T) {
	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()

	t.Run("missing event", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.CreateEventNotification(ctx, &usecase.CreateNotificationInput{EventID: eventID, UserID: userID, Detail: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	})

	t.Run("not organizer creates nothing", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, eventID).Return(&entity.Event{ID: eventID}, nil)
		fx.eventRepo.EXPECT().IsOrganizer(ctx, eventID, userID).Return(false, nil)

		_, err := fx.service.CreateEventNotification(ctx, &usecase.CreateNotificationInput{EventID: eventID, UserID: userID, Detail: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrNotOrganizer)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_CreateAdminNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	eventID, notificationID := uuid.New(), uuid.New()

	expectFanout(t, fx, eventID, []uuid.UUID{uuid.New()}, notificationID)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	notification, err := fx.service.CreateAdminNotification(ctx, eventID, "Cancelled due to weather")

	require.NoError(t, err)
	assert.True(t, notification.FromAdmin)
}

func TestNotificationService_CreateAdminNotification_EventDeleted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	eventID := uuid.New()

	repos := newTxRepos(t)
	expectTx(fx.txManager, repos)
	repos.events.EXPECT().LockByID(ctx, eventID, repository.LockForShare).Return(nil, repository.ErrEventNotFound)

	_, err := fx.service.CreateAdminNotification(ctx, eventID, "x")

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestNotificationService_ListUserNotifications_ClampsPaging(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.notificationRepo.EXPECT().ListUserNotifications(ctx, userID, 100, 0).Return([]*entity.UserNotification{{UserID: userID}}, nil)

	list, err := fx.service.ListUserNotifications(ctx, userID, 500, -3)

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotificationService_MarkNotificationRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID, ownID, foreignID := uuid.New(), uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().MarkAsRead(ctx, userID, ownID).Return(nil)
	fx.notificationRepo.EXPECT().MarkAsRead(ctx, userID, foreignID).Return(repository.ErrUserNotificationNotFound)

	require.NoError(t, fx.service.MarkNotificationRead(ctx, userID, ownID))
	assert.ErrorIs(t, fx.service.MarkNotificationRead(ctx, userID, foreignID), domainerrors.ErrNotificationNotFound)
}
