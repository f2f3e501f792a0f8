package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type participationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository is the constructor for participationRepository.
func NewParticipationRepository(db *gorm.DB) repository.ParticipationRepository {
	return &participationRepository{
		db: db,
	}
}

// Create inserts a participation. The (user_id, event_id) unique index turns a lost race into ErrAlreadyJoined.
func (repo *participationRepository) Create(ctx context.Context, participation *entity.UserEvent) error {
	if participation.ID == uuid.Nil {
		participation.ID = uuid.New()
	}
	if participation.JoinedAt.IsZero() {
		participation.JoinedAt = time.Now()
	}

	participationM := &model.UserEventModel{
		ID:       participation.ID,
		UserID:   participation.UserID,
		EventID:  participation.EventID,
		JoinedAt: participation.JoinedAt,
	}

	if err := repo.db.WithContext(ctx).Create(participationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyJoined
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid user or event reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create participation")
	}

	return nil
}

func (repo *participationRepository) Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.UserEventModel{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check participation")
	}

	return count > 0, nil
}

func (repo *participationRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.UserEventModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count participants")
	}

	return count, nil
}

func (repo *participationRepository) ListUserIDsByEvent(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.UserEventModel{}).
		Where("event_id = ?", eventID).
		Order("joined_at ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	return userIDs, nil
}
