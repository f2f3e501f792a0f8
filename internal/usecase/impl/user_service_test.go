package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	locationRepo *mockRepo.MockLocationRepository
	eventRepo    *mockRepo.MockEventRepository
	hasher       *mockSvc.MockPasswordHasher
	qrService    *mockSvc.MockQRCodeService
	storage      *mockSvc.MockObjectStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	return createTestUserServiceWithConfig(t, newTestConfig())
}

func createTestUserServiceWithConfig(t *testing.T, cfg *config.Config) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
		storage:      mockSvc.NewMockObjectStorage(t),
	}

	service, err := NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		LocationRepo: fx.locationRepo,
		EventRepo:    fx.eventRepo,
		Hasher:       fx.hasher,
		QRService:    fx.qrService,
		Storage:      fx.storage,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = service

	return fx
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)

	return appErr.ErrorCode()
}

func float(v float64) *float64 { return &v }

func TestNewUserService_InvalidUploadSize(t *testing.T) {
	cfg := newTestConfig()
	cfg.Storage.MaxUploadSize = "lots"

	_, err := NewUserService(UserServiceParams{Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("with credentials and location", func(t *testing.T) {
		fx := createTestUserService(t)
		locationID := uuid.New()
		userID := uuid.New()

		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
		repos.locations.EXPECT().FindByID(ctx, locationID).Return(&entity.Location{ID: locationID}, nil)
		repos.users.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, u *entity.User) error {
				assert.Equal(t, "hashed", u.PasswordHash)
				assert.NotEmpty(t, u.InviteCode)
				u.ID = userID

				return nil
			})
		repos.locations.EXPECT().AssignToUser(ctx, userID, locationID).Return(nil)

		user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
			Name:       "Jin",
			Username:   "jin",
			Password:   "s3cret!",
			LocationID: &locationID,
		})

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, &locationID, user.LocationID)
	})

	t.Run("name only", func(t *testing.T) {
		fx := createTestUserService(t)
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Mina"})

		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		fx := createTestUserService(t)
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		repos.users.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUsernameTaken)

		_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Jin", Username: "jin", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unknown location", func(t *testing.T) {
		fx := createTestUserService(t)
		locationID := uuid.New()
		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.locations.EXPECT().FindByID(ctx, locationID).Return(nil, repository.ErrLocationNotFound)

		_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Jin", LocationID: &locationID})

		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "  "})
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))

		_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Jin", Username: "jin"})
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost too high"))

		_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Jin", Username: "jin", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserService_GetUserSummary(t *testing.T) {
	ctx := context.Background()
	fx := createTestUserService(t)
	userID, locationID := uuid.New(), uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Jin", LocationID: &locationID}, nil)
	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(&entity.Location{ID: locationID, City: "Seoul"}, nil)

	summary, err := fx.service.GetUserSummary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Jin", summary.Name)
	assert.Equal(t, "Seoul", summary.Location.City)

	missing := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	_, err = fx.service.GetUserSummary(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_RegisterPushToken(t *testing.T) {
	ctx := context.Background()
	fx := createTestUserService(t)
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdatePushToken(ctx, userID, "ExponentPushToken[x]").Return(nil)

	require.NoError(t, fx.service.RegisterPushToken(ctx, userID, " ExponentPushToken[x] "))
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, fx.service.RegisterPushToken(ctx, userID, "")))

	ghost := uuid.New()
	fx.userRepo.EXPECT().UpdatePushToken(ctx, ghost, "t").Return(repository.ErrUserNotFound)
	assert.ErrorIs(t, fx.service.RegisterPushToken(ctx, ghost, "t"), domainerrors.ErrUserNotFound)
}

func TestUserService_GetRecommendedEvents(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("widens to locations inside the radius", func(t *testing.T) {
		fx := createTestUserService(t)
		home := &entity.Location{ID: uuid.New(), Latitude: float(37.5665), Longitude: float(126.9780)}
		near := &entity.Location{ID: uuid.New(), Latitude: float(37.5700), Longitude: float(126.9920)}
		far := &entity.Location{ID: uuid.New(), Latitude: float(35.1796), Longitude: float(129.0756)}
		unknown := &entity.Location{ID: uuid.New()}

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, LocationID: &home.ID}, nil)
		fx.locationRepo.EXPECT().FindByID(ctx, home.ID).Return(home, nil)
		fx.locationRepo.EXPECT().FindWithCoordinates(ctx).Return([]*entity.Location{home, near, far, unknown}, nil)
		fx.eventRepo.EXPECT().
			FindRecommended(ctx, []uuid.UUID{home.ID, near.ID}, userID, 10).
			Return([]*entity.Event{{Name: "Go meetup"}}, nil)

		events, err := fx.service.GetRecommendedEvents(ctx, userID)

		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("home without coordinates", func(t *testing.T) {
		fx := createTestUserService(t)
		homeID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, LocationID: &homeID}, nil)
		fx.locationRepo.EXPECT().FindByID(ctx, homeID).Return(&entity.Location{ID: homeID}, nil)
		fx.eventRepo.EXPECT().FindRecommended(ctx, []uuid.UUID{homeID}, userID, 10).Return(nil, nil)

		events, err := fx.service.GetRecommendedEvents(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("without recommendation config only the home location is queried, uncapped", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Recommendation = nil
		fx := createTestUserServiceWithConfig(t, cfg)
		homeID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, LocationID: &homeID}, nil)
		fx.eventRepo.EXPECT().FindRecommended(ctx, []uuid.UUID{homeID}, userID, 0).
			Return([]*entity.Event{{Name: "a"}, {Name: "b"}}, nil)

		events, err := fx.service.GetRecommendedEvents(ctx, userID)

		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("zero radius skips the location lookup", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Recommendation = &config.RecommendationConfig{}
		fx := createTestUserServiceWithConfig(t, cfg)
		homeID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, LocationID: &homeID}, nil)
		fx.eventRepo.EXPECT().FindRecommended(ctx, []uuid.UUID{homeID}, userID, 0).Return(nil, nil)

		_, err := fx.service.GetRecommendedEvents(ctx, userID)

		require.NoError(t, err)
	})

	t.Run("user without location", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		_, err := fx.service.GetRecommendedEvents(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrUserHasNoLocation)
	})
}

func TestUserService_UploadProfileImage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	t.Run("stores png and updates profile", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.storage.EXPECT().
			Put(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "profile-images/"+userID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", mock.Anything).
			RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
				stored, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, pngHeader, stored)

				return "https://cdn.example.com/" + key, nil
			})
		fx.userRepo.EXPECT().
			UpdateProfileImage(ctx, userID, mock.MatchedBy(func(url string) bool {
				return strings.HasPrefix(url, "https://cdn.example.com/profile-images/")
			})).
			Return(nil)

		user, err := fx.service.UploadProfileImage(ctx, userID, &usecase.ProfileImageUpload{
			ContentType: "image/png",
			Size:        int64(len(pngHeader)),
			Body:        bytes.NewReader(pngHeader),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(user.ProfileImage, "https://cdn.example.com/"))
	})

	t.Run("rejects non image content", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		_, err := fx.service.UploadProfileImage(ctx, userID, &usecase.ProfileImageUpload{
			ContentType: "image/png",
			Size:        11,
			Body:        strings.NewReader("hello world"),
		})

		assert.Equal(t, "INVALID_IMAGE", errorCode(t, err))
		fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UploadProfileImage(ctx, userID, &usecase.ProfileImageUpload{Size: 2 << 20, Body: bytes.NewReader(pngHeader)})

		assert.Equal(t, domainerrors.ErrImageTooLarge.ErrorCode(), errorCode(t, err))
	})
}

func TestUserService_GetInviteQRCode(t *testing.T) {
	ctx := context.Background()
	fx := createTestUserService(t)
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, InviteCode: "cq1"}, nil)
	fx.qrService.EXPECT().GenerateInviteQR("cq1").Return([]byte("png"), nil)

	png, err := fx.service.GetInviteQRCode(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
