package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []string
}

func (d *recordingDispatcher) DispatchNotification(_ context.Context, event *service.NotificationEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event.EventNotificationID)

	return nil
}

func TestMemoryPublisher_DispatchesAndDrains(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewMemoryPublisher(dispatcher, 2, 4, logger)

	for _, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, p.PublishNotificationEvent(context.Background(), &service.NotificationEvent{EventNotificationID: id}))
	}
	require.NoError(t, p.Close())

	assert.ElementsMatch(t, []string{"n1", "n2", "n3"}, dispatcher.events)

	err := p.PublishNotificationEvent(context.Background(), &service.NotificationEvent{EventNotificationID: "n4"})
	assert.ErrorIs(t, err, ErrPublisherClosed)
	assert.NoError(t, p.Close())
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	event := &service.NotificationEvent{
		RequestID:           "req-1",
		EventNotificationID: "en-1",
		EventID:             "ev-1",
		RecipientCount:      3,
	}

	env, err := NewPushEnvelope(event)
	require.NoError(t, err)
	assert.Equal(t, "en-1", env.Message.MessageID)
	assert.Equal(t, "ev-1", env.Message.Attributes["event_id"])

	decoded, err := env.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}
