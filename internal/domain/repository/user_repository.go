// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a username or invite code collides with an existing user.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindFirstByName retrieves the oldest user with the given display name.
	FindFirstByName(ctx context.Context, name string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfileImage stores the public URL of the user's profile picture.
	UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error

	// UpdatePushToken registers the device token used for push delivery.
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error

	// ClearPushToken removes a token the push provider reported as unregistered.
	ClearPushToken(ctx context.Context, token string) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
