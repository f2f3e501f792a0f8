package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExpoToken = "ExponentPushToken[xxxxxxxxxxxxxxxxxxxxxx]"

func TestIsExpoPushToken(t *testing.T) {
	assert.True(t, IsExpoPushToken(testExpoToken))
	assert.True(t, IsExpoPushToken("ExpoPushToken[abc]"))
	assert.False(t, IsExpoPushToken("fcm-registration-token"))
	assert.False(t, IsExpoPushToken("ExponentPushToken[unterminated"))
	assert.False(t, IsExpoPushToken(""))
}

func TestExpoService_SendSingleNotification(t *testing.T) {
	var received []expoMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer expo-secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"ticket-1"}]}`))
	}))
	defer srv.Close()

	svc := NewExpoService(srv.URL, "expo-secret", srv.Client())

	err := svc.SendSingleNotification(context.Background(), testExpoToken, "New update for event Go meetup", "Room changed", map[string]string{
		"event_id": "42",
	})

	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, testExpoToken, received[0].To)
	assert.Equal(t, "New update for event Go meetup", received[0].Title)
	assert.Equal(t, "Room changed", received[0].Body)
	assert.Equal(t, "42", received[0].Data["event_id"])
}

func TestExpoService_SendSingleNotification_Errors(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		status      int
		body        string
		wantInvalid bool
	}{
		{
			name:        "device not registered",
			token:       testExpoToken,
			status:      http.StatusOK,
			body:        `{"data":[{"status":"error","message":"not a registered push notification recipient","details":{"error":"DeviceNotRegistered"}}]}`,
			wantInvalid: true,
		},
		{
			name:        "malformed token is rejected locally",
			token:       "not-an-expo-token",
			wantInvalid: true,
		},
		{
			name:   "ticket error",
			token:  testExpoToken,
			status: http.StatusOK,
			body:   `{"data":[{"status":"error","message":"too big","details":{"error":"MessageTooBig"}}]}`,
		},
		{
			name:   "server error",
			token:  testExpoToken,
			status: http.StatusInternalServerError,
			body:   `upstream unavailable`,
		},
		{
			name:   "request level error",
			token:  testExpoToken,
			status: http.StatusOK,
			body:   `{"errors":[{"code":"PUSH_TOO_MANY_EXPERIENCE_IDS","message":"mixed projects"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := NewExpoService(srv.URL, "", srv.Client())

			err := svc.SendSingleNotification(context.Background(), tt.token, "title", "body", nil)

			require.Error(t, err)
			assert.Equal(t, tt.wantInvalid, isInvalidToken(err))
		})
	}
}

func isInvalidToken(err error) bool {
	return errors.Is(err, service.ErrInvalidPushToken)
}
