package handler

import (
	"log/slog"
	"net/http"

	"eventhub/config"
	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves Kakao OAuth and password sessions.
type AuthHandler struct {
	accountUC    usecase.AccountUsecase
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
	if params.Config.Auth != nil {
		h.cookieSecure = params.Config.Auth.CookieSecure
	}

	return h
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type sessionResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// KakaoLogin redirects the browser to the Kakao consent screen.
func (h *AuthHandler) KakaoLogin(c echo.Context) error {
	authURL, err := h.accountUC.StartKakaoLogin(c.Request().Context(), c.QueryParam("return_url"))
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, authURL)
}

// KakaoCallback completes the OAuth flow and sends the browser back to the caller's return URL.
func (h *AuthHandler) KakaoCallback(c echo.Context) error {
	output, err := h.accountUC.HandleKakaoCallback(c.Request().Context(), &usecase.KakaoCallbackInput{
		State:            c.QueryParam("state"),
		Code:             c.QueryParam("code"),
		Error:            c.QueryParam("error"),
		ErrorDescription: c.QueryParam("error_description"),
	})
	if err != nil {
		return err
	}

	target, err := output.RedirectURL()
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.AccessTokenCookie,
		Value:    output.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Kakao login completed",
		slog.String("user_id", output.UserID.String()),
		slog.String("status", string(output.Status)),
	)

	return c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &sessionResponse{
		UserID:       output.User.ID,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &sessionResponse{
		UserID:       output.User.ID,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}
