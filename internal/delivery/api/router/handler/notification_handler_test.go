package handler

import (
	"net/http"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUC "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: testLogger()}), notificationUC
}

func TestNotificationHandler_CreateEventNotification(t *testing.T) {
	eventID := uuid.New()
	organizerID := uuid.New()
	body := `{"event_id":"` + eventID.String() + `","user_id":"` + organizerID.String() + `","detail":"Room changed to B2"}`

	t.Run("organizer posts update", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().
			CreateEventNotification(mock.Anything, &usecase.CreateNotificationInput{
				EventID: eventID,
				UserID:  organizerID,
				Detail:  "Room changed to B2",
			}).
			Return(&entity.EventNotification{ID: uuid.New(), EventID: eventID, Detail: "Room changed to B2"}, nil)

		rec := serve(t, h.CreateEventNotification, testRequest{
			method: http.MethodPost,
			target: "/events/notifications/create",
			body:   body,
			caller: &organizerID,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"detail":"Room changed to B2"`)
	})

	t.Run("not the organizer", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().CreateEventNotification(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotOrganizer)

		rec := serve(t, h.CreateEventNotification, testRequest{
			method: http.MethodPost,
			target: "/events/notifications/create",
			body:   body,
			caller: &organizerID,
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_ORGANIZER", errorCodeOf(t, rec))
	})

	t.Run("posting as someone else", func(t *testing.T) {
		h, _ := createTestNotificationHandler(t)

		rec := serve(t, h.CreateEventNotification, testRequest{
			method: http.MethodPost,
			target: "/events/notifications/create",
			body:   body,
			caller: ptr(uuid.New()),
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCodeOf(t, rec))
	})

	t.Run("empty detail", func(t *testing.T) {
		h, _ := createTestNotificationHandler(t)

		rec := serve(t, h.CreateEventNotification, testRequest{
			method: http.MethodPost,
			target: "/events/notifications/create",
			body:   `{"event_id":"` + eventID.String() + `","user_id":"` + organizerID.String() + `"}`,
			caller: &organizerID,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_CreateAdminNotification(t *testing.T) {
	h, notificationUC := createTestNotificationHandler(t)
	eventID := uuid.New()
	notificationUC.EXPECT().CreateAdminNotification(mock.Anything, eventID, "Venue closes early").
		Return(&entity.EventNotification{ID: uuid.New(), EventID: eventID, Detail: "Venue closes early", FromAdmin: true}, nil)

	rec := serve(t, h.CreateAdminNotification, testRequest{
		method: http.MethodPost,
		target: "/admin/events/" + eventID.String() + "/notifications",
		body:   `{"detail":"Venue closes early"}`,
		params: map[string]string{"id": eventID.String()},
		caller: ptr(uuid.New()),
		roles:  []string{entity.RoleAdmin},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from_admin":true`)
}

func TestNotificationHandler_ListUserNotifications(t *testing.T) {
	userID := uuid.New()

	t.Run("default page", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().ListUserNotifications(mock.Anything, userID, defaultNotificationPageSize, 0).
			Return([]*entity.UserNotification{{ID: uuid.New(), UserID: userID}}, nil)

		rec := serve(t, h.ListUserNotifications, testRequest{
			method: http.MethodGet,
			target: "/users/" + userID.String() + "/notifications",
			params: map[string]string{"id": userID.String()},
			caller: &userID,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Page)
		assert.Equal(t, defaultNotificationPageSize, env.Page.Limit)
		assert.Equal(t, 1, env.Page.Count)
	})

	t.Run("explicit page", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().ListUserNotifications(mock.Anything, userID, 5, 10).
			Return([]*entity.UserNotification{}, nil)

		rec := serve(t, h.ListUserNotifications, testRequest{
			method: http.MethodGet,
			target: "/users/" + userID.String() + "/notifications?limit=5&offset=10",
			params: map[string]string{"id": userID.String()},
			caller: &userID,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, 10, env.Page.Offset)
		assert.Equal(t, 0, env.Page.Count)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		h, _ := createTestNotificationHandler(t)

		rec := serve(t, h.ListUserNotifications, testRequest{
			method: http.MethodGet,
			target: "/users/" + userID.String() + "/notifications?limit=ten",
			params: map[string]string{"id": userID.String()},
			caller: &userID,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_MarkNotificationRead(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("marks read", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().MarkNotificationRead(mock.Anything, userID, notificationID).Return(nil)

		rec := serve(t, h.MarkNotificationRead, testRequest{
			method: http.MethodPost,
			target: "/users/" + userID.String() + "/notifications/" + notificationID.String() + "/read",
			params: map[string]string{"id": userID.String(), "nid": notificationID.String()},
			caller: &userID,
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown notification", func(t *testing.T) {
		h, notificationUC := createTestNotificationHandler(t)
		notificationUC.EXPECT().MarkNotificationRead(mock.Anything, userID, notificationID).Return(domainerrors.ErrNotificationNotFound)

		rec := serve(t, h.MarkNotificationRead, testRequest{
			method: http.MethodPost,
			target: "/users/" + userID.String() + "/notifications/" + notificationID.String() + "/read",
			params: map[string]string{"id": userID.String(), "nid": notificationID.String()},
			caller: &userID,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
