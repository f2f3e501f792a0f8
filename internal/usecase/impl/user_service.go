package impl

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadSize = 5 << 20
	sniffLength          = 512
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	locationRepo  repository.LocationRepository
	eventRepo     repository.EventRepository
	hasher        service.PasswordHasher
	qrService     service.QRCodeService
	storage       service.ObjectStorage
	radiusKm      float64
	limit         int
	maxUploadSize int64
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	LocationRepo repository.LocationRepository
	EventRepo    repository.EventRepository
	Hasher       service.PasswordHasher
	QRService    service.QRCodeService
	Storage      service.ObjectStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	srv := &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		locationRepo:  params.LocationRepo,
		eventRepo:     params.EventRepo,
		hasher:        params.Hasher,
		qrService:     params.QRService,
		storage:       params.Storage,
		maxUploadSize: defaultMaxUploadSize,
		logger:        params.Logger,
	}

	if rec := params.Config.Recommendation; rec != nil {
		srv.radiusKm = rec.RadiusKm
		srv.limit = rec.Limit
	}

	if st := params.Config.Storage; st != nil && st.MaxUploadSize != "" {
		size, err := bytes.Parse(st.MaxUploadSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid storage.maxUploadSize %q", st.MaxUploadSize)
		}
		srv.maxUploadSize = size
	}

	return srv, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a user. Username and password are optional but must be given together.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if (input.Username == "") != (input.Password == "") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password must be provided together")
	}

	user := &entity.User{
		Name:        input.Name,
		Bio:         input.Bio,
		DateOfBirth: input.DateOfBirth,
		Username:    input.Username,
		InviteCode:  xid.New().String(),
		LocationID:  input.LocationID,
	}

	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed
		}
		user.PasswordHash = hash
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.LocationID != nil {
			if _, err := repoFactory.LocationRepo().FindByID(ctx, *input.LocationID); err != nil {
				return err
			}
		}

		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		if input.LocationID == nil {
			return nil
		}

		return repoFactory.LocationRepo().AssignToUser(ctx, user.ID, *input.LocationID)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrLocationNotFound):
			return nil, domainerrors.ErrLocationNotFound
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID))

	return user, nil
}

func (srv *userService) GetUserSummary(ctx context.Context, userID uuid.UUID) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	summary := &usecase.UserSummary{
		ID:           user.ID,
		Name:         user.Name,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
	}

	if user.LocationID != nil {
		location, err := srv.locationRepo.FindByID(ctx, *user.LocationID)
		if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(err, "failed to load user location")
		}
		summary.Location = location
	}

	return summary, nil
}

func (srv *userService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return user, nil
}

func (srv *userService) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("expo_push_token is required")
	}

	if err := srv.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		return mapUserError(err)
	}

	srv.log(ctx).Info("Push token registered", slog.Any("userID", userID))

	return nil
}

// GetRecommendedEvents lists unjoined events at the user's location, widened to every location whose
// coordinates lie within the configured radius of it.
func (srv *userService) GetRecommendedEvents(ctx context.Context, userID uuid.UUID) ([]*entity.Event, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	if user.LocationID == nil {
		return nil, domainerrors.ErrUserHasNoLocation
	}

	locationIDs, err := srv.nearbyLocationIDs(ctx, *user.LocationID)
	if err != nil {
		return nil, err
	}

	events, err := srv.eventRepo.FindRecommended(ctx, locationIDs, userID, srv.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recommended events")
	}

	return events, nil
}

func (srv *userService) nearbyLocationIDs(ctx context.Context, homeID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{homeID}
	if srv.radiusKm <= 0 {
		return ids, nil
	}

	home, err := srv.locationRepo.FindByID(ctx, homeID)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return ids, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load home location")
	}

	center, ok := home.Point()
	if !ok {
		return ids, nil
	}

	candidates, err := srv.locationRepo.FindWithCoordinates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load locations")
	}

	maxMeters := srv.radiusKm * 1000
	for _, candidate := range candidates {
		if candidate.ID == homeID {
			continue
		}
		point, ok := candidate.Point()
		if ok && geo.Distance(center, point) <= maxMeters {
			ids = append(ids, candidate.ID)
		}
	}

	return ids, nil
}

// UploadProfileImage stores a PNG or JPEG and points the user's profile at it.
func (srv *userService) UploadProfileImage(ctx context.Context, userID uuid.UUID, upload *usecase.ProfileImageUpload) (*entity.User, error) {
	if upload.Size > srv.maxUploadSize {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("maximum size is " + bytes.Format(srv.maxUploadSize))
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	body := bufio.NewReaderSize(upload.Body, sniffLength)
	head, err := body.Peek(sniffLength)
	if err != nil && len(head) == 0 {
		return nil, domainerrors.ErrInvalidImage
	}

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrInvalidImage.WithDetails(contentType)
	}

	key := "profile-images/" + userID.String() + "/" + xid.New().String() + "." + ext
	imageURL, err := srv.storage.Put(ctx, key, contentType, body)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile image", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store profile image")
	}

	if err := srv.userRepo.UpdateProfileImage(ctx, userID, imageURL); err != nil {
		return nil, mapUserError(err)
	}
	user.ProfileImage = imageURL

	return user, nil
}

// GetInviteQRCode renders the user's invite link as a PNG QR code.
func (srv *userService) GetInviteQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	png, err := srv.qrService.GenerateInviteQR(user.InviteCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite qr code")
	}

	return png, nil
}

func mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return err
}
