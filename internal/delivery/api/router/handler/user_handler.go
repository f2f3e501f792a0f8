package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const profileImageField = "image"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest is the body of POST /users/create_user.
type CreateUserRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Bio         string     `json:"bio" validate:"max=1000"`
	DateOfBirth string     `json:"date_of_birth"`
	LocationID  *uuid.UUID `json:"location_id"`
	Username    string     `json:"username" validate:"omitempty,min=3,max=50"`
	Password    string     `json:"password" validate:"omitempty,min=8,max=72"`
}

// RegisterPushTokenRequest is the body of POST /users/:id/register-push-token.
type RegisterPushTokenRequest struct {
	ExpoPushToken string `json:"expo_push_token" validate:"required"`
}

type userSummaryResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profile_image"`
	Location     *locationResponse `json:"location"`
}

type userInfoResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Bio          string     `json:"bio"`
	InviteCode   string     `json:"invite_code"`
	ProfileImage string     `json:"profile_image"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Username     string     `json:"username,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	HasPushToken bool       `json:"has_push_token"`
	IsStaff      bool       `json:"is_staff"`
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func newUserInfoResponse(u *entity.User) *userInfoResponse {
	return &userInfoResponse{
		ID:           u.ID,
		Name:         u.Name,
		Bio:          u.Bio,
		InviteCode:   u.InviteCode,
		ProfileImage: u.ProfileImage,
		DateOfBirth:  u.DateOfBirth,
		Username:     u.Username,
		LastLogin:    u.LastLogin,
		HasPushToken: u.HasPushToken(),
		IsStaff:      u.IsStaff,
		LocationID:   u.LocationID,
		CreatedAt:    u.CreatedAt,
	}
}

// CreateUser handles user sign-up.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:        req.Name,
		Bio:         req.Bio,
		DateOfBirth: dob,
		LocationID:  req.LocationID,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newUserInfoResponse(user))
}

// GetUser returns the public summary of a user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.userUC.GetUserSummary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &userSummaryResponse{
		ID:           summary.ID,
		Name:         summary.Name,
		Bio:          summary.Bio,
		ProfileImage: summary.ProfileImage,
		Location:     newLocationResponse(summary.Location),
	})
}

// GetMyInfo returns the caller's full profile.
func (h *UserHandler) GetMyInfo(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	user, err := h.userUC.GetUserInfo(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserInfoResponse(user))
}

func (h *UserHandler) RegisterPushToken(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	var req RegisterPushTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.RegisterPushToken(c.Request().Context(), userID, req.ExpoPushToken); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "registered"})
}

func (h *UserHandler) GetRecommendedEvents(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	events, err := h.userUC.GetRecommendedEvents(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEventResponses(events))
}

// UploadProfileImage accepts a multipart upload in the "image" field.
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelf(c, userID); err != nil {
		return err
	}

	header, err := c.FormFile(profileImageField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field " + profileImageField + " is required")
	}

	file, err := header.Open()
	if err != nil {
		return domainerrors.ErrInvalidImage
	}
	defer file.Close()

	user, err := h.userUC.UploadProfileImage(c.Request().Context(), userID, &usecase.ProfileImageUpload{
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"profile_image": user.ProfileImage})
}

// GetInviteQRCode serves the invite QR code as a PNG.
func (h *UserHandler) GetInviteQRCode(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.userUC.GetInviteQRCode(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
