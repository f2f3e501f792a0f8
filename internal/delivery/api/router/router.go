// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"eventhub/config"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadSize = 5 << 20
	// multipartOverhead covers boundaries and part headers around the image.
	multipartOverhead = 64 << 10
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	EventHandler        *handler.EventHandler
	NotificationHandler *handler.NotificationHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	eventHandler        *handler.EventHandler
	notificationHandler *handler.NotificationHandler
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		eventHandler:        params.EventHandler,
		notificationHandler: params.NotificationHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths are registered without trailing slashes; the server strips them before routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/kakao/login", r.authHandler.KakaoLogin)
		authGroup.GET("/kakao/callback", r.authHandler.KakaoCallback)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/create_user", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.GET("/:id/recommended-events", r.userHandler.GetRecommendedEvents)
		usersGroup.GET("/:id/invite-qr", r.userHandler.GetInviteQRCode)

		usersGroup.GET("/:id/myinfo", r.userHandler.GetMyInfo, authenticate)
		usersGroup.POST("/:id/register-push-token", r.userHandler.RegisterPushToken, authenticate)
		usersGroup.POST("/:id/profile-image", r.userHandler.UploadProfileImage,
			authenticate, echomiddleware.BodyLimit(r.uploadBodyLimit()))
		usersGroup.GET("/:id/notifications", r.notificationHandler.ListUserNotifications, authenticate)
		usersGroup.POST("/:id/notifications/:nid/read", r.notificationHandler.MarkNotificationRead, authenticate)
	}

	eventsGroup := e.Group("/events")
	{
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.GET("/:id/spots", r.eventHandler.AvailableSpots)
		eventsGroup.GET("/:id/is-user-in", r.eventHandler.IsUserIn)

		eventsGroup.POST("", r.eventHandler.CreateEvent, authenticate)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent, authenticate)
		eventsGroup.POST("/:id/join", r.eventHandler.JoinEvent, authenticate)
		eventsGroup.POST("/notifications/create", r.notificationHandler.CreateEventNotification, authenticate)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/events/:id/notifications", r.notificationHandler.CreateAdminNotification)
	}
}

// uploadBodyLimit is the request cap for profile image uploads, which bypass the global body limit.
func (r *router) uploadBodyLimit() string {
	size := int64(defaultMaxUploadSize)
	if r.config.Storage != nil && r.config.Storage.MaxUploadSize != "" {
		if parsed, err := bytes.Parse(r.config.Storage.MaxUploadSize); err == nil {
			size = parsed
		}
	}

	return bytes.Format(size + multipartOverhead)
}

// IsUploadRoute reports whether the matched route carries its own body limit.
func IsUploadRoute(c echo.Context) bool {
	return strings.HasSuffix(c.Path(), "/profile-image")
}
