package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler serves event management and participation.
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Name            string     `json:"name" validate:"required,max=200"`
	Description     string     `json:"description"`
	Capacity        int        `json:"capacity" validate:"gte=0"`
	DurationMinutes int        `json:"duration_minutes" validate:"gte=0"`
	Address         string     `json:"address" validate:"max=255"`
	Status          string     `json:"status" validate:"omitempty,oneof=planned ongoing completed cancelled"`
	IsFeatured      bool       `json:"is_featured"`
	LocationID      *uuid.UUID `json:"location_id"`
}

// JoinEventRequest is the body of POST /events/:id/join.
type JoinEventRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// CreateEvent makes the authenticated caller the organizer of a new event.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	organizerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), organizerID, &usecase.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Duration:    time.Duration(req.DurationMinutes) * time.Minute,
		Address:     req.Address,
		Status:      entity.EventStatus(req.Status),
		IsFeatured:  req.IsFeatured,
		LocationID:  req.LocationID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newEventResponse(event))
}

// GetEvent returns the event and counts the view.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	callerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), callerID, eventID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) AvailableSpots(c echo.Context) error {
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	spots, err := h.eventUC.AvailableSpots(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"available_spots": spots})
}

// IsUserIn reports whether ?user_id= participates in the event.
func (h *EventHandler) IsUserIn(c echo.Context) error {
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	rawUserID := c.QueryParam("user_id")
	if rawUserID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user_id is required")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}

	in, err := h.eventUC.IsParticipant(c.Request().Context(), eventID, userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_in_event": in})
}

// JoinEvent answers 201 for a new participant and 200 when already joined. Callers may only join themselves.
func (h *EventHandler) JoinEvent(c echo.Context) error {
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req JoinEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	outcome, err := h.eventUC.JoinEvent(c.Request().Context(), eventID, userID)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if outcome == usecase.JoinOutcomeAlreadyJoined {
		status = http.StatusOK
	}

	return response.Success(c, status, map[string]string{"status": string(outcome)})
}
