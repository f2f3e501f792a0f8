// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

const (
	defaultStateTTL            = 10 * time.Minute
	defaultAuthorizationDenied = "Failed to retrieve authorization code"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	oauthService   service.OAuthService
	stateStore     service.StateStore
	tokenService   service.TokenService
	hasher         service.PasswordHasher
	allowedOrigins []string
	stateTTL       time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OAuthService service.OAuthService
	StateStore   service.StateStore
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	stateTTL := defaultStateTTL
	if params.Config.Kakao != nil && params.Config.Kakao.StateTTL > 0 {
		stateTTL = params.Config.Kakao.StateTTL
	}

	return &accountService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		oauthService:   params.OAuthService,
		stateStore:     params.StateStore,
		tokenService:   params.TokenService,
		hasher:         params.Hasher,
		allowedOrigins: params.Config.HTTP.AllowOrigins,
		stateTTL:       stateTTL,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartKakaoLogin issues a state bound to returnURL and returns the consent page URL.
func (srv *accountService) StartKakaoLogin(ctx context.Context, returnURL string) (string, error) {
	if !srv.isAllowedReturnURL(returnURL) {
		srv.log(ctx).Warn("Rejected OAuth return URL", slog.String("return_url", returnURL))

		return "", domainerrors.ErrReturnURLNotAllowed.WithDetails(returnURL)
	}

	state, err := srv.stateStore.Issue(ctx, returnURL, srv.stateTTL)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	return srv.oauthService.BuildAuthorizationURL(state), nil
}

// HandleKakaoCallback completes the authorization code flow and links the Kakao identity to a local user.
func (srv *accountService) HandleKakaoCallback(ctx context.Context, input *usecase.KakaoCallbackInput) (*usecase.KakaoCallbackOutput, error) {
	if input.Error != "" || input.Code == "" {
		details := input.ErrorDescription
		if details == "" {
			details = defaultAuthorizationDenied
		}
		srv.log(ctx).Warn("Kakao authorization denied", slog.String("error", input.Error), slog.String("description", details))

		return nil, domainerrors.ErrAuthorizationDenied.WithDetails(details)
	}

	returnURL, err := srv.stateStore.Consume(ctx, input.State)
	if errors.Is(err, service.ErrStateNotFound) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume oauth state")
	}

	token, err := srv.oauthService.ExchangeCode(ctx, input.Code)
	if err != nil || token == nil || token.AccessToken == "" {
		srv.log(ctx).Error("Kakao token exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenExchangeFailed
	}

	profile, err := srv.oauthService.FetchProfile(ctx, token.AccessToken)
	if err != nil || profile == nil || profile.ID == "" {
		srv.log(ctx).Error("Kakao profile fetch failed", slog.Any("error", err))

		return nil, domainerrors.ErrProfileFetchFailed
	}

	now := srv.now()
	status, user, err := srv.linkAccount(ctx, token, profile, now)
	if errors.Is(err, repository.ErrAuthAlreadyExists) {
		// A concurrent callback created the link first; the retry reads its row.
		srv.log(ctx).Info("Authentication link created concurrently, retrying", slog.String("provider_user_id", profile.ID))
		status, user, err = srv.linkAccount(ctx, token, profile, now)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAuthentication) {
			return nil, domainerrors.ErrDuplicateAccountLink
		}
		srv.log(ctx).Error("Failed to link Kakao account", slog.String("provider_user_id", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to link kakao account")
	}

	accessToken, refreshToken, err := srv.startSession(ctx, user, now)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Kakao login completed", slog.String("status", string(status)), slog.Any("userID", user.ID))

	return &usecase.KakaoCallbackOutput{
		ReturnURL:    returnURL,
		State:        input.State,
		Status:       status,
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *accountService) linkAccount(
	ctx context.Context,
	token *service.OAuthToken,
	profile *service.OAuthUser,
	now time.Time,
) (usecase.LinkStatus, *entity.User, error) {
	var (
		status usecase.LinkStatus
		user   *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		link, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeKakao, profile.ID)
		if errors.Is(err, repository.ErrAuthNotFound) {
			status = usecase.LinkStatusNew
			user, err = srv.createLinkedUser(ctx, authRepo, userRepo, token, profile, now)

			return err
		}
		if err != nil {
			return err
		}

		applyTokens(link, token, now)
		if err := authRepo.UpdateTokens(ctx, link); err != nil {
			return errors.Wrap(err, "failed to refresh provider tokens")
		}

		binding, err := authRepo.FindUserAuthentication(ctx, link.ID)
		if err == nil {
			status = usecase.LinkStatusExisting
			user, err = userRepo.FindByID(ctx, binding.UserID)

			return errors.Wrap(err, "failed to load linked user")
		}
		if !errors.Is(err, repository.ErrUserAuthenticationNotFound) {
			return err
		}

		// The link exists but belongs to nobody: adopt a user with the same display name or create one.
		status = usecase.LinkStatusNew
		user, err = resolveOrphanUser(ctx, userRepo, profile)
		if err != nil {
			return errors.Wrap(err, "failed to resolve user for orphaned link")
		}

		return authRepo.CreateUserAuthentication(ctx, &entity.UserAuthentication{
			UserID:           user.ID,
			AuthenticationID: link.ID,
		})
	})

	return status, user, err
}

func (srv *accountService) createLinkedUser(
	ctx context.Context,
	authRepo repository.AuthRepository,
	userRepo repository.UserRepository,
	token *service.OAuthToken,
	profile *service.OAuthUser,
	now time.Time,
) (*entity.User, error) {
	link := &entity.AuthenticationLink{
		Provider:       entity.ProviderTypeKakao,
		ProviderUserID: profile.ID,
	}
	applyTokens(link, token, now)

	if err := authRepo.CreateAuthentication(ctx, link); err != nil {
		return nil, err
	}

	user := newOAuthUser(profile)
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user for kakao account")
	}

	if err := authRepo.CreateUserAuthentication(ctx, &entity.UserAuthentication{
		UserID:           user.ID,
		AuthenticationID: link.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to bind kakao account")
	}

	return user, nil
}

func applyTokens(link *entity.AuthenticationLink, token *service.OAuthToken, now time.Time) {
	link.SetToken(entity.TokenKindAccess, token.AccessToken, token.ExpiresIn, now)
	link.SetToken(entity.TokenKindRefresh, token.RefreshToken, token.RefreshExpiresIn, now)
}

// resolveOrphanUser matches by nickname only when Kakao returned one.
func resolveOrphanUser(ctx context.Context, userRepo repository.UserRepository, profile *service.OAuthUser) (*entity.User, error) {
	if profile.Nickname != "" {
		user, err := userRepo.FindFirstByName(ctx, profile.Nickname)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	user := newOAuthUser(profile)
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func newOAuthUser(profile *service.OAuthUser) *entity.User {
	return &entity.User{
		Name:         profile.Nickname,
		ProfileImage: profile.ProfileImage,
		InviteCode:   xid.New().String(),
	}
}

// Login authenticates a user created with a username and password.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.startSession(ctx, user, srv.now())
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new token pair. Roles are reloaded from the user, not the refresh token.
func (srv *accountService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != string(entity.TokenKindRefresh) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

func (srv *accountService) startSession(ctx context.Context, user *entity.User, now time.Time) (string, string, error) {
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", "", errors.Wrap(err, "failed to update last login")
	}
	user.LastLogin = &now

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	return accessToken, refreshToken, nil
}

// isAllowedReturnURL accepts absolute http(s) URLs whose origin is configured, or any origin for "*".
func (srv *accountService) isAllowedReturnURL(returnURL string) bool {
	parsed, err := url.Parse(returnURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return false
	}

	origin := parsed.Scheme + "://" + parsed.Host
	for _, allowed := range srv.allowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
			return true
		}
	}

	return false
}
