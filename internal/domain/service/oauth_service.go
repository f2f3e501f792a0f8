package service

import (
	"context"
	"errors"
	"time"

	"eventhub/internal/domain/entity"
)

// OAuthToken is the token set returned by a provider's token endpoint.
type OAuthToken struct {
	AccessToken string
	// RefreshToken is empty when the provider did not rotate it.
	RefreshToken string
	// ExpiresIn and RefreshExpiresIn are lifetimes in seconds, nil when not reported.
	ExpiresIn        *int64
	RefreshExpiresIn *int64
}

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID           string              // Provider-specific user ID
	Nickname     string              // User's display name
	ProfileImage string              // URL to user's profile picture
	Provider     entity.ProviderType // The OAuth provider
}

// OAuthService defines the authorization-code flow against a provider.
type OAuthService interface {
	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType

	// BuildAuthorizationURL returns the provider's consent page URL carrying state.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)

	// FetchProfile reads the provider identity behind an access token.
	FetchProfile(ctx context.Context, accessToken string) (*OAuthUser, error)
}

// ErrStateNotFound is returned by StateStore.Consume for unknown, replayed or expired states.
var ErrStateNotFound = errors.New("oauth state not found")

// StateStore binds one-time OAuth state values to the caller's return URL. States must survive
// the round trip to the provider, which may land on a different API instance.
type StateStore interface {
	// Issue creates a new state bound to returnURL that expires after ttl.
	Issue(ctx context.Context, returnURL string, ttl time.Duration) (string, error)

	// Consume returns the bound return URL and invalidates the state.
	Consume(ctx context.Context, state string) (returnURL string, err error)
}
