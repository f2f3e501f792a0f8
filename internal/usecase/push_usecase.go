package usecase

import (
	"context"

	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
)

// DispatchResult summarises one fanout run.
type DispatchResult struct {
	Recipients    int
	Sent          int
	Failed        int
	InvalidTokens int
}

// PushUsecase delivers push messages for a materialised notification.
type PushUsecase interface {
	DispatchNotification(ctx context.Context, event *service.NotificationEvent) error
	Deliver(ctx context.Context, event *service.NotificationEvent) (*DispatchResult, error)
}

// RetryableError marks failures the queue should redeliver.
type RetryableError struct {
	err error
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

func (e *RetryableError) Error() string {
	return e.err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// IsRetryable reports whether err or anything it wraps is a RetryableError.
func IsRetryable(err error) bool {
	var retryable *RetryableError

	return errors.As(err, &retryable)
}
