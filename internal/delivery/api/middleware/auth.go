package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix    = "Bearer "
	accessTokenType = "access"
)

// AuthMiddleware validates JWT access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate accepts the access token from the Authorization header or, failing that,
// from the cookie set after an OAuth login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}
		if claims.Type != accessTokenType {
			return domainerrors.ErrUnauthorized.WithDetails("access token required")
		}

		deliverycontext.SetPrincipal(c, claims.UserID, claims.Roles)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(deliverycontext.GetRoles(c), role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role)
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
