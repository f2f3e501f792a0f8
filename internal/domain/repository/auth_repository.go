// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when no link exists for a provider identity.
	ErrAuthNotFound = errors.New("authentication link not found")
	// ErrAuthAlreadyExists is returned when a concurrent writer created the same provider identity first.
	ErrAuthAlreadyExists = errors.New("authentication link already exists")
	// ErrDuplicateAuthentication is returned when more than one link matches a provider identity.
	ErrDuplicateAuthentication = errors.New("multiple authentication links for provider identity")
	// ErrUserAuthenticationNotFound is returned when a link is not bound to any user.
	ErrUserAuthenticationNotFound = errors.New("user authentication not found")
)

// AuthRepository defines the operations on provider links and their user bindings.
type AuthRepository interface {
	// FindAuthentication retrieves the link for a provider identity.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.AuthenticationLink, error)

	// CreateAuthentication persists a new provider link.
	CreateAuthentication(ctx context.Context, link *entity.AuthenticationLink) error

	// UpdateTokens stores refreshed provider tokens and expiries.
	UpdateTokens(ctx context.Context, link *entity.AuthenticationLink) error

	// FindUserAuthentication retrieves the user binding of a link.
	FindUserAuthentication(ctx context.Context, authenticationID uuid.UUID) (*entity.UserAuthentication, error)

	// CreateUserAuthentication binds a user to a link.
	CreateUserAuthentication(ctx context.Context, binding *entity.UserAuthentication) error
}
