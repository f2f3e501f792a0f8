package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 12},
		Kakao: &config.KakaoConfig{
			StateTTL: 5 * time.Minute,
		},
		Push: &config.PushConfig{
			Concurrency: 4,
			Timeout:     time.Second,
			Language:    "en",
		},
		Recommendation: &config.RecommendationConfig{
			RadiusKm: 5,
			Limit:    10,
		},
		Storage: &config.StorageConfig{
			MaxUploadSize: "1MB",
		},
	}
	cfg.HTTP.AllowOrigins = []string{"http://localhost:3000"}

	return cfg
}

// txRepos is the set of repository mocks handed to a transaction callback.
type txRepos struct {
	factory       *mockRepo.MockRepositoryFactory
	users         *mockRepo.MockUserRepository
	auths         *mockRepo.MockAuthRepository
	locations     *mockRepo.MockLocationRepository
	events        *mockRepo.MockEventRepository
	participation *mockRepo.MockParticipationRepository
	notifications *mockRepo.MockNotificationRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		users:         mockRepo.NewMockUserRepository(t),
		auths:         mockRepo.NewMockAuthRepository(t),
		locations:     mockRepo.NewMockLocationRepository(t),
		events:        mockRepo.NewMockEventRepository(t),
		participation: mockRepo.NewMockParticipationRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().AuthRepo().Return(repos.auths).Maybe()
	repos.factory.EXPECT().LocationRepo().Return(repos.locations).Maybe()
	repos.factory.EXPECT().EventRepo().Return(repos.events).Maybe()
	repos.factory.EXPECT().ParticipationRepo().Return(repos.participation).Maybe()
	repos.factory.EXPECT().NotificationRepo().Return(repos.notifications).Maybe()

	return repos
}

// expectTx makes txManager run every callback against repos and return the callback's error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}
