package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated user's ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the key for the authenticated user's roles in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetPrincipal stores the authenticated caller in echo.Context.
func SetPrincipal(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user's ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok
}

// GetRoles returns the authenticated user's roles, or nil.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}
