package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const oauthStateBytes = 32

// oauthStateStore keeps pending OAuth states in Postgres so any API replica can finish the callback.
type oauthStateStore struct {
	db     *gorm.DB
	now    func() time.Time
	logger *slog.Logger
}

// NewOAuthStateStore is the constructor for the Postgres-backed StateStore.
func NewOAuthStateStore(db *gorm.DB, logger *slog.Logger) service.StateStore {
	return &oauthStateStore{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// Issue stores a random state bound to returnURL and sweeps states that already expired.
func (s *oauthStateStore) Issue(ctx context.Context, returnURL string, ttl time.Duration) (string, error) {
	buf := make([]byte, oauthStateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(buf)
	now := s.now()

	err := s.db.WithContext(ctx).Create(&model.OAuthStateModel{
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to store oauth state")
	}

	// A failed sweep only leaves rows for the next Issue to remove.
	if err := s.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.OAuthStateModel{}).Error; err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to remove expired oauth states", slog.Any("error", err))
	}

	return state, nil
}

// Consume deletes the state in one statement, so a replayed or concurrent callback finds nothing.
func (s *oauthStateStore) Consume(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", service.ErrStateNotFound
	}

	var rows []model.OAuthStateModel
	result := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("state = ?", state).
		Delete(&rows)
	if result.Error != nil {
		return "", errors.Wrap(result.Error, "failed to consume oauth state")
	}

	if len(rows) == 0 || s.now().After(rows[0].ExpiresAt) {
		return "", service.ErrStateNotFound
	}

	return rows[0].ReturnURL, nil
}
