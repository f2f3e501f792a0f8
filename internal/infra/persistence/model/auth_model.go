package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationLinkModel mirrors the 'authentication_links' table. One row per provider identity.
type AuthenticationLinkModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider              string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_authentication_links_provider_user"`
	ProviderUserID        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_authentication_links_provider_user"`
	AccessToken           string    `gorm:"type:text;not null;default:''"`
	RefreshToken          string    `gorm:"type:text;not null;default:''"`
	AccessTokenExpiresAt  *time.Time
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationLinkModel) TableName() string {
	return "authentication_links"
}

// UserAuthenticationModel mirrors the 'user_authentications' join table.
type UserAuthenticationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_authentications_user_auth"`
	AuthenticationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_authentications_user_auth"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAuthenticationModel) TableName() string {
	return "user_authentications"
}

// OAuthStateModel mirrors the 'oauth_states' table of pending authorization requests.
type OAuthStateModel struct {
	State     string    `gorm:"type:varchar(64);primary_key"`
	ReturnURL string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_oauth_states_expires_at"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthStateModel) TableName() string {
	return "oauth_states"
}
