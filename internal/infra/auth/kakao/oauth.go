// Package kakao implements the Kakao authorization-code flow on top of golang.org/x/oauth2.
package kakao

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/kakao"
)

const (
	defaultProfileURL = "https://kapi.kakao.com/v2/user/me"
	defaultTimeout    = 5 * time.Second
	maxErrorBodyBytes = 1 << 10
)

var (
	errMissingAccessToken = errors.New("token response has no access token")
	errMissingUserID      = errors.New("profile response has no user id")
)

// OAuthService talks to the Kakao authorization and user APIs.
type OAuthService struct {
	oauthConfig *oauth2.Config
	profileURL  string
	httpClient  *http.Client
}

// NewOAuthService creates a Kakao OAuth client from configuration.
// Empty endpoint overrides keep the public Kakao hosts.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	kakaoCfg := cfg.Kakao
	if kakaoCfg == nil {
		kakaoCfg = &config.KakaoConfig{}
	}

	endpoint := kakao.Endpoint
	// Kakao expects client_id and client_secret in the form body.
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	if kakaoCfg.AuthURL != "" {
		endpoint.AuthURL = kakaoCfg.AuthURL
	}
	if kakaoCfg.TokenURL != "" {
		endpoint.TokenURL = kakaoCfg.TokenURL
	}

	profileURL := defaultProfileURL
	if kakaoCfg.ProfileURL != "" {
		profileURL = kakaoCfg.ProfileURL
	}

	timeout := kakaoCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     kakaoCfg.ClientID,
			ClientSecret: kakaoCfg.ClientSecret,
			RedirectURL:  kakaoCfg.RedirectURI,
			Endpoint:     endpoint,
		},
		profileURL: profileURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeKakao
}

// BuildAuthorizationURL constructs the Kakao consent page URL carrying state.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for Kakao tokens against the registered redirect URI.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	tok, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, errors.Errorf("kakao token endpoint returned %d: %s", retrieveErr.Response.StatusCode, retrieveErr.ErrorCode)
		}

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	if tok.AccessToken == "" {
		return nil, errMissingAccessToken
	}

	return &service.OAuthToken{
		AccessToken:      tok.AccessToken,
		RefreshToken:     tok.RefreshToken,
		ExpiresIn:        extraSeconds(tok, "expires_in"),
		RefreshExpiresIn: extraSeconds(tok, "refresh_token_expires_in"),
	}, nil
}

type kakaoProfile struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
	KakaoAccount struct {
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// FetchProfile reads the Kakao identity behind the access token.
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	form := url.Values{}
	form.Set("property_keys", `["kakao_account.profile"]`)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.profileURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch kakao profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("kakao profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var profile kakaoProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode kakao profile")
	}

	if profile.ID == 0 {
		return nil, errMissingUserID
	}

	nickname := profile.KakaoAccount.Profile.Nickname
	if nickname == "" {
		nickname = profile.Properties.Nickname
	}
	image := profile.KakaoAccount.Profile.ProfileImageURL
	if image == "" {
		image = profile.Properties.ProfileImage
	}

	return &service.OAuthUser{
		ID:           strconv.FormatInt(profile.ID, 10),
		Nickname:     nickname,
		ProfileImage: image,
		Provider:     entity.ProviderTypeKakao,
	}, nil
}

// extraSeconds reads a lifetime field from the raw token response.
func extraSeconds(tok *oauth2.Token, key string) *int64 {
	var seconds int64

	switch v := tok.Extra(key).(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		seconds = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		seconds = n
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil
		}
		seconds = n
	default:
		return nil
	}

	return &seconds
}
