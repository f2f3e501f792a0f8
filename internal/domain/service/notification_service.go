package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken is returned when the provider reports the device token as unregistered.
var ErrInvalidPushToken = errors.New("invalid push token")

// PushService defines the interface for push notification delivery
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token.
	// Unregistered or malformed tokens are reported as ErrInvalidPushToken.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
