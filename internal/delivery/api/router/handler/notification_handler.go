package handler

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/api/response"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultNotificationPageSize = 20

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves event notifications and per-user inboxes.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// CreateNotificationRequest is the body of POST /events/notifications/create.
type CreateNotificationRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
	UserID  string `json:"user_id" validate:"required,uuid"`
	Detail  string `json:"detail" validate:"required,max=2000"`
}

// AdminNotificationRequest is the body of POST /admin/events/:id/notifications.
type AdminNotificationRequest struct {
	Detail string `json:"detail" validate:"required,max=2000"`
}

// CreateEventNotification records an organizer update and fans it out to participants.
func (h *NotificationHandler) CreateEventNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	eventID, errEvent := uuid.Parse(req.EventID)
	userID, errUser := uuid.Parse(req.UserID)
	if errEvent != nil || errUser != nil {
		return domainerrors.ErrValidationFailed.WithDetails("event_id and user_id must be UUIDs")
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	notification, err := h.notificationUC.CreateEventNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		EventID: eventID,
		UserID:  userID,
		Detail:  req.Detail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, notification)
}

// CreateAdminNotification broadcasts a staff message to an event's participants.
func (h *NotificationHandler) CreateAdminNotification(c echo.Context) error {
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AdminNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationUC.CreateAdminNotification(c.Request().Context(), eventID, req.Detail)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, notification)
}

// ListUserNotifications returns the caller's inbox, newest first.
func (h *NotificationHandler) ListUserNotifications(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	limit, offset := defaultNotificationPageSize, 0
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	notifications, err := h.notificationUC.ListUserNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return err
	}

	return response.SuccessWithPage(c, http.StatusOK, notifications, &response.PageMeta{
		Limit:  limit,
		Offset: offset,
		Count:  len(notifications),
	})
}

func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "nid")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkNotificationRead(c.Request().Context(), userID, notificationID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
