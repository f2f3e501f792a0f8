package handler

import (
	"net/http"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUC "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventHandler(t *testing.T) (*EventHandler, *mockUC.MockEventUsecase) {
	eventUC := mockUC.NewMockEventUsecase(t)

	return NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: testLogger()}), eventUC
}

func TestEventHandler_CreateEvent(t *testing.T) {
	organizerID := uuid.New()

	t.Run("creates event for the caller", func(t *testing.T) {
		h, eventUC := createTestEventHandler(t)
		eventUC.EXPECT().
			CreateEvent(mock.Anything, organizerID, mock.MatchedBy(func(in *usecase.CreateEventInput) bool {
				return in.Name == "Go meetup" && in.Capacity == 30 && in.Duration == 90*time.Minute && in.Status == entity.EventStatusPlanned
			})).
			Return(&entity.Event{ID: uuid.New(), Name: "Go meetup", Capacity: 30, Duration: 90 * time.Minute, Status: entity.EventStatusPlanned}, nil)

		rec := serve(t, h.CreateEvent, testRequest{
			method: http.MethodPost,
			target: "/events",
			body:   `{"name":"Go meetup","capacity":30,"duration_minutes":90,"status":"planned"}`,
			caller: &organizerID,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"duration":"1h30m"`)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		h, _ := createTestEventHandler(t)

		rec := serve(t, h.CreateEvent, testRequest{
			method: http.MethodPost,
			target: "/events",
			body:   `{"name":"Go meetup","status":"postponed"}`,
			caller: &organizerID,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCodeOf(t, rec))
	})

	t.Run("requires authentication", func(t *testing.T) {
		h, _ := createTestEventHandler(t)

		rec := serve(t, h.CreateEvent, testRequest{
			method: http.MethodPost,
			target: "/events",
			body:   `{"name":"Go meetup"}`,
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCodeOf(t, rec))
	})
}

func TestEventHandler_GetEvent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		h, eventUC := createTestEventHandler(t)
		eventID := uuid.New()
		eventUC.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, domainerrors.ErrEventNotFound)

		rec := serve(t, h.GetEvent, testRequest{
			method: http.MethodGet,
			target: "/events/" + eventID.String(),
			params: map[string]string{"id": eventID.String()},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "EVENT_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "req-1", env.Meta.RequestID)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := createTestEventHandler(t)

		rec := serve(t, h.GetEvent, testRequest{
			method: http.MethodGet,
			target: "/events/abc",
			params: map[string]string{"id": "abc"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCodeOf(t, rec))
	})
}

func TestEventHandler_JoinEvent(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		caller     *uuid.UUID
		body       string
		setup      func(eventUC *mockUC.MockEventUsecase)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:   "first join",
			caller: &userID,
			body:   `{"user_id":"` + userID.String() + `"}`,
			setup: func(eventUC *mockUC.MockEventUsecase) {
				eventUC.EXPECT().JoinEvent(mock.Anything, eventID, userID).Return(usecase.JoinOutcomeJoined, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"joined"`,
		},
		{
			name:   "repeated join",
			caller: &userID,
			body:   `{"user_id":"` + userID.String() + `"}`,
			setup: func(eventUC *mockUC.MockEventUsecase) {
				eventUC.EXPECT().JoinEvent(mock.Anything, eventID, userID).Return(usecase.JoinOutcomeAlreadyJoined, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"already_joined"`,
		},
		{
			name:   "event full",
			caller: &userID,
			body:   `{"user_id":"` + userID.String() + `"}`,
			setup: func(eventUC *mockUC.MockEventUsecase) {
				eventUC.EXPECT().JoinEvent(mock.Anything, eventID, userID).Return("", domainerrors.ErrEventFull)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_FULL",
		},
		{
			name:       "joining someone else",
			caller:     ptr(uuid.New()),
			body:       `{"user_id":"` + userID.String() + `"}`,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "missing user id",
			caller:     &userID,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, eventUC := createTestEventHandler(t)
			if tt.setup != nil {
				tt.setup(eventUC)
			}

			rec := serve(t, h.JoinEvent, testRequest{
				method: http.MethodPost,
				target: "/events/" + eventID.String() + "/join",
				body:   tt.body,
				params: map[string]string{"id": eventID.String()},
				caller: tt.caller,
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCodeOf(t, rec))
			}
		})
	}
}

func TestEventHandler_IsUserIn(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	t.Run("participant", func(t *testing.T) {
		h, eventUC := createTestEventHandler(t)
		eventUC.EXPECT().IsParticipant(mock.Anything, eventID, userID).Return(true, nil)

		rec := serve(t, h.IsUserIn, testRequest{
			method: http.MethodGet,
			target: "/events/" + eventID.String() + "/is-user-in?user_id=" + userID.String(),
			params: map[string]string{"id": eventID.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"is_in_event":true}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("missing user_id", func(t *testing.T) {
		h, _ := createTestEventHandler(t)

		rec := serve(t, h.IsUserIn, testRequest{
			method: http.MethodGet,
			target: "/events/" + eventID.String() + "/is-user-in",
			params: map[string]string{"id": eventID.String()},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCodeOf(t, rec))
	})
}

func TestEventHandler_AvailableSpots(t *testing.T) {
	h, eventUC := createTestEventHandler(t)
	eventID := uuid.New()
	eventUC.EXPECT().AvailableSpots(mock.Anything, eventID).Return(int64(7), nil)

	rec := serve(t, h.AvailableSpots, testRequest{
		method: http.MethodGet,
		target: "/events/" + eventID.String() + "/spots",
		params: map[string]string{"id": eventID.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available_spots":7}`, string(decodeEnvelope(t, rec).Data))
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	callerID := uuid.New()
	eventID := uuid.New()

	t.Run("organizer deletes", func(t *testing.T) {
		h, eventUC := createTestEventHandler(t)
		eventUC.EXPECT().DeleteEvent(mock.Anything, callerID, eventID).Return(nil)

		rec := serve(t, h.DeleteEvent, testRequest{
			method: http.MethodDelete,
			target: "/events/" + eventID.String(),
			params: map[string]string{"id": eventID.String()},
			caller: &callerID,
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not the organizer", func(t *testing.T) {
		h, eventUC := createTestEventHandler(t)
		eventUC.EXPECT().DeleteEvent(mock.Anything, callerID, eventID).Return(domainerrors.ErrForbidden)

		rec := serve(t, h.DeleteEvent, testRequest{
			method: http.MethodDelete,
			target: "/events/" + eventID.String(),
			params: map[string]string{"id": eventID.String()},
			caller: &callerID,
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})
}
