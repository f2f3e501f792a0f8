// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"net/http"
	"time"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// requireSelf allows the request only when the authenticated caller is userID.
func requireSelf(c echo.Context, userID uuid.UUID) error {
	callerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	if callerID != userID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

type locationResponse struct {
	ID          uuid.UUID `json:"id"`
	Province    string    `json:"province"`
	City        string    `json:"city"`
	Town        string    `json:"town"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

func newLocationResponse(l *entity.Location) *locationResponse {
	if l == nil {
		return nil
	}

	return &locationResponse{
		ID:          l.ID,
		Province:    l.Province,
		City:        l.City,
		Town:        l.Town,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}

type eventResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Capacity    int                `json:"capacity"`
	Duration    string             `json:"duration"`
	Address     string             `json:"address"`
	Status      entity.EventStatus `json:"status"`
	ViewCount   int64              `json:"view_count"`
	IsFeatured  bool               `json:"is_featured"`
	LocationID  *uuid.UUID         `json:"location_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func newEventResponse(e *entity.Event) *eventResponse {
	return &eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Capacity:    e.Capacity,
		Duration:    util.FormatDuration(e.Duration),
		Address:     e.Address,
		Status:      e.Status,
		ViewCount:   e.ViewCount,
		IsFeatured:  e.IsFeatured,
		LocationID:  e.LocationID,
		CreatedAt:   e.CreatedAt,
	}
}

func newEventResponses(events []*entity.Event) []*eventResponse {
	out := make([]*eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, newEventResponse(e))
	}

	return out
}

// parseDate accepts YYYY-MM-DD.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date_of_birth must be YYYY-MM-DD")
	}

	return &t, nil
}
