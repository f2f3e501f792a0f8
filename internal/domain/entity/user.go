// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person taking part in events. Users are created through sign-up or on their first
// OAuth login and are never hard-deleted by the application.
type User struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name          string     // Display name shown to other participants.
	Bio           string     // Free-form self description.
	InviteCode    string     // Unique code other users can share to invite friends.
	ProfileImage  string     // Public URL of the uploaded profile picture, empty if none.
	DateOfBirth   *time.Time // Optional birth date.
	Username      string     // Login name for password authentication, empty for OAuth-only users.
	PasswordHash  string     // bcrypt hash of the password, empty for OAuth-only users.
	LastLogin     *time.Time // Last successful login through any method.
	ExpoPushToken string     // Device token used for push delivery, empty if not registered.
	IsStaff       bool       // Staff users may broadcast admin notifications.
	LocationID    *uuid.UUID // The user's home location, resolved through user_locations.
	CreatedAt     time.Time  // Timestamp of when this user account was created.
	UpdatedAt     time.Time  // Timestamp of the last modification to this user's data.
}

// HasPushToken reports whether the user can receive push notifications.
func (u *User) HasPushToken() bool {
	return u.ExpoPushToken != ""
}

// Roles returns the authorization roles carried in the user's access token.
func (u *User) Roles() []string {
	if u.IsStaff {
		return []string{RoleUser, RoleAdmin}
	}

	return []string{RoleUser}
}

// Role names embedded in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
