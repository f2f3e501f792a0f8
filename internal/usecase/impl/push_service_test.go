package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
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

type pushServiceFixtures struct {
	service          usecase.PushUsecase
	eventRepo        *mockRepo.MockEventRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pusher           *mockSvc.MockPushService
	translator       *mockSvc.MockTranslator
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	fx := pushServiceFixtures{
		eventRepo:        mockRepo.NewMockEventRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		pusher:           mockSvc.NewMockPushService(t),
		translator:       mockSvc.NewMockTranslator(t),
	}
	fx.service = NewPushService(PushServiceParams{
		EventRepo:        fx.eventRepo,
		UserRepo:         fx.userRepo,
		NotificationRepo: fx.notificationRepo,
		Pusher:           fx.pusher,
		Translator:       fx.translator,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func (fx pushServiceFixtures) expectLoad(notification *entity.EventNotification, recipients []*entity.PushRecipient) {
	fx.notificationRepo.EXPECT().FindEventNotificationByID(mock.Anything, notification.ID).Return(notification, nil)
	fx.eventRepo.EXPECT().FindByID(mock.Anything, notification.EventID).Return(&entity.Event{ID: notification.EventID, Name: "Go meetup"}, nil)
	fx.notificationRepo.EXPECT().FindPushRecipients(mock.Anything, notification.ID).Return(recipients, nil)
	fx.translator.EXPECT().
		T("en", service.MessagePushEventUpdateTitle, map[string]any{"EventName": "Go meetup"}).
		Return("New update for event Go meetup")
}

func newTestNotification() *entity.EventNotification {
	return &entity.EventNotification{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		Detail:    "Doors open at 7",
		CreatedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushService_Deliver_SendsToEveryRecipient(t *testing.T) {
	fx := createTestPushService(t)
	notification := newTestNotification()
	recipients := []*entity.PushRecipient{
		{UserID: uuid.New(), PushToken: "ExponentPushToken[a]"},
		{UserID: uuid.New(), PushToken: "ExponentPushToken[b]"},
		{UserID: uuid.New(), PushToken: "ExponentPushToken[c]"},
	}
	fx.expectLoad(notification, recipients)

	wantData := map[string]string{
		"event_notification_id": notification.ID.String(),
		"event_id":              notification.EventID.String(),
		"detail":                "Doors open at 7",
		"time_created":          "2026-05-01T10:00:00Z",
		"from_admin":            "false",
	}
	for _, r := range recipients {
		fx.pusher.EXPECT().
			SendSingleNotification(mock.Anything, r.PushToken, "New update for event Go meetup", "Doors open at 7", wantData).
			Return(nil)
	}

	result, err := fx.service.Deliver(context.Background(), &service.NotificationEvent{EventNotificationID: notification.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{Recipients: 3, Sent: 3}, result)
}

func TestPushService_Deliver_FailuresAreCountedAndInvalidTokensCleared(t *testing.T) {
	fx := createTestPushService(t)
	notification := newTestNotification()
	recipients := []*entity.PushRecipient{
		{UserID: uuid.New(), PushToken: "ok"},
		{UserID: uuid.New(), PushToken: "gone"},
		{UserID: uuid.New(), PushToken: "slow"},
	}
	fx.expectLoad(notification, recipients)

	fx.pusher.EXPECT().SendSingleNotification(mock.Anything, "ok", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.pusher.EXPECT().
		SendSingleNotification(mock.Anything, "gone", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrInvalidPushToken, "DeviceNotRegistered"))
	fx.pusher.EXPECT().
		SendSingleNotification(mock.Anything, "slow", mock.Anything, mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded)
	fx.userRepo.EXPECT().ClearPushToken(mock.Anything, "gone").Return(nil)

	result, err := fx.service.Deliver(context.Background(), &service.NotificationEvent{EventNotificationID: notification.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Recipients)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestPushService_Deliver_RespectsConcurrencyLimit(t *testing.T) {
	fx := createTestPushService(t)
	notification := newTestNotification()

	recipients := make([]*entity.PushRecipient, 12)
	for i := range recipients {
		recipients[i] = &entity.PushRecipient{UserID: uuid.New(), PushToken: uuid.NewString()}
	}
	fx.expectLoad(notification, recipients)

	var inFlight, peak atomic.Int64
	fx.pusher.EXPECT().
		SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string, string, map[string]string) error {
			current := inFlight.Add(1)
			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		})

	result, err := fx.service.Deliver(context.Background(), &service.NotificationEvent{EventNotificationID: notification.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, 12, result.Sent)
	assert.LessOrEqual(t, peak.Load(), int64(4))
}

func TestPushService_Deliver_LoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("database failure is retryable", func(t *testing.T) {
		fx := createTestPushService(t)
		id := uuid.New()
		fx.notificationRepo.EXPECT().FindEventNotificationByID(ctx, id).Return(nil, errors.New("connection refused"))

		err := fx.service.DispatchNotification(ctx, &service.NotificationEvent{EventNotificationID: id.String()})

		require.Error(t, err)
		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("deleted notification is skipped", func(t *testing.T) {
		fx := createTestPushService(t)
		id := uuid.New()
		fx.notificationRepo.EXPECT().FindEventNotificationByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

		result, err := fx.service.Deliver(ctx, &service.NotificationEvent{EventNotificationID: id.String()})

		require.NoError(t, err)
		assert.Zero(t, result.Recipients)
	})

	t.Run("malformed id is not retryable", func(t *testing.T) {
		fx := createTestPushService(t)

		err := fx.service.DispatchNotification(ctx, &service.NotificationEvent{EventNotificationID: "not-a-uuid"})

		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
	})
}
