// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"net/url"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LinkStatus tells the frontend whether the OAuth login created a new account.
type LinkStatus string

const (
	LinkStatusNew      LinkStatus = "new"
	LinkStatusExisting LinkStatus = "existing"
)

// --- Input DTOs ---

// KakaoCallbackInput carries the query parameters Kakao appends to the redirect URI.
type KakaoCallbackInput struct {
	State            string
	Code             string
	Error            string
	ErrorDescription string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// KakaoCallbackOutput is the result of a completed OAuth login.
type KakaoCallbackOutput struct {
	ReturnURL    string
	State        string
	Status       LinkStatus
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
}

// RedirectURL builds ReturnURL?status=&state=&userId=, keeping any query the return URL already had.
func (o *KakaoCallbackOutput) RedirectURL() (string, error) {
	target, err := url.Parse(o.ReturnURL)
	if err != nil {
		return "", errors.Wrap(err, "parse return url")
	}

	query := target.Query()
	query.Set("status", string(o.Status))
	query.Set("state", o.State)
	query.Set("userId", o.UserID.String())
	target.RawQuery = query.Encode()

	return target.String(), nil
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AccountUsecase covers Kakao account linking and local password sessions.
type AccountUsecase interface {
	// StartKakaoLogin returns the provider authorize URL with a fresh state bound to returnURL.
	StartKakaoLogin(ctx context.Context, returnURL string) (string, error)

	// HandleKakaoCallback exchanges the authorization code, links the provider identity to a local user and issues a session.
	HandleKakaoCallback(ctx context.Context, input *KakaoCallbackInput) (*KakaoCallbackOutput, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error)
}
