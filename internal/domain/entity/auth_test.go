package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticationLink_SetToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	accessTTL := int64(21599)
	refreshTTL := int64(5183999)

	link := &AuthenticationLink{}
	link.SetToken(TokenKindAccess, "access-1", &accessTTL, now)
	link.SetToken(TokenKindRefresh, "refresh-1", &refreshTTL, now)

	assert.Equal(t, "access-1", link.AccessToken)
	assert.Equal(t, "refresh-1", link.RefreshToken)
	assert.Equal(t, now.Add(21599*time.Second), *link.AccessTokenExpiresAt)
	assert.Equal(t, now.Add(5183999*time.Second), *link.RefreshTokenExpiresAt)

	link.SetToken(TokenKindAccess, "access-2", nil, now)
	assert.Equal(t, "access-2", link.AccessToken)
	assert.Nil(t, link.AccessTokenExpiresAt)
}

func TestAuthenticationLink_IsTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name string
		link AuthenticationLink
		kind TokenKind
		want bool
	}{
		{name: "access without expiry is expired", link: AuthenticationLink{}, kind: TokenKindAccess, want: true},
		{name: "refresh without expiry is not expired", link: AuthenticationLink{}, kind: TokenKindRefresh, want: false},
		{name: "access in the past", link: AuthenticationLink{AccessTokenExpiresAt: &past}, kind: TokenKindAccess, want: true},
		{name: "access in the future", link: AuthenticationLink{AccessTokenExpiresAt: &future}, kind: TokenKindAccess, want: false},
		{name: "refresh in the past", link: AuthenticationLink{RefreshTokenExpiresAt: &past}, kind: TokenKindRefresh, want: true},
		{name: "refresh in the future", link: AuthenticationLink{RefreshTokenExpiresAt: &future}, kind: TokenKindRefresh, want: false},
		{name: "unknown kind", link: AuthenticationLink{}, kind: TokenKind("id"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.link.IsTokenExpired(tt.kind, now))
		})
	}
}
