// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	ProviderTypeKakao ProviderType = "KAKAO"
)

// TokenKind distinguishes the two provider tokens stored on a link.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// AuthenticationLink is one external account at a provider together with the tokens the
// provider issued for it. The pair (Provider, ProviderUserID) is unique.
type AuthenticationLink struct {
	ID                    uuid.UUID    // The unique ID for this link record.
	Provider              ProviderType // The identity provider, e.g. KAKAO.
	ProviderUserID        string       // The user's identifier at the provider.
	AccessToken           string       // Latest provider access token.
	RefreshToken          string       // Latest provider refresh token.
	AccessTokenExpiresAt  *time.Time   // Absolute access token expiry, nil when unknown.
	RefreshTokenExpiresAt *time.Time   // Absolute refresh token expiry, nil when unknown.
	CreatedAt             time.Time    // Timestamp of when the link was first created.
	UpdatedAt             time.Time    // Timestamp of the last token refresh.
}

// SetToken stores a provider token and its absolute expiry computed as now + expiresIn seconds.
// A nil expiresIn clears the stored expiry.
func (l *AuthenticationLink) SetToken(kind TokenKind, token string, expiresIn *int64, now time.Time) {
	var expiresAt *time.Time
	if expiresIn != nil {
		t := now.Add(time.Duration(*expiresIn) * time.Second)
		expiresAt = &t
	}

	switch kind {
	case TokenKindAccess:
		l.AccessToken = token
		l.AccessTokenExpiresAt = expiresAt
	case TokenKindRefresh:
		l.RefreshToken = token
		l.RefreshTokenExpiresAt = expiresAt
	}
}

// IsTokenExpired reports whether the given token is expired at now.
// An access token without a stored expiry counts as expired; a refresh token without one does not.
func (l *AuthenticationLink) IsTokenExpired(kind TokenKind, now time.Time) bool {
	switch kind {
	case TokenKindAccess:
		if l.AccessTokenExpiresAt == nil {
			return true
		}

		return now.After(*l.AccessTokenExpiresAt)
	case TokenKindRefresh:
		if l.RefreshTokenExpiresAt == nil {
			return false
		}

		return now.After(*l.RefreshTokenExpiresAt)
	default:
		return true
	}
}

// UserAuthentication binds a User to an AuthenticationLink.
type UserAuthentication struct {
	ID               uuid.UUID // The unique ID for this binding.
	UserID           uuid.UUID // The local user.
	AuthenticationID uuid.UUID // The linked provider account.
	CreatedAt        time.Time // Timestamp of when the account was linked.
}
