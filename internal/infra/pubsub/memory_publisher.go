package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// MemoryPublisher queues events on a buffered channel and dispatches them
// from a fixed set of worker goroutines in the same process.
type MemoryPublisher struct {
	queue      chan *service.NotificationEvent
	dispatcher service.NotificationDispatcher
	logger     *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewMemoryPublisher starts workers goroutines consuming a queue of bufferSize.
func NewMemoryPublisher(dispatcher service.NotificationDispatcher, workers, bufferSize int, logger *slog.Logger) *MemoryPublisher {
	if workers <= 0 {
		workers = 1
	}
	if bufferSize < 0 {
		bufferSize = 0
	}

	p := &MemoryPublisher{
		queue:      make(chan *service.NotificationEvent, bufferSize),
		dispatcher: dispatcher,
		logger:     logger,
	}

	p.wg.Add(workers)
	for range workers {
		go p.work()
	}

	return p
}

func (p *MemoryPublisher) work() {
	defer p.wg.Done()

	for event := range p.queue {
		if err := p.dispatcher.DispatchNotification(context.Background(), event); err != nil {
			p.logger.Error("[MemoryPubSub] Dispatch failed",
				slog.String("event_notification_id", event.EventNotificationID),
				slog.Any("error", err),
			)
		}
	}
}

// PublishNotificationEvent enqueues event, blocking while the queue is full.
func (p *MemoryPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Close stops accepting events and waits for queued ones to drain.
func (p *MemoryPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
