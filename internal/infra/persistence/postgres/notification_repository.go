// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const userNotificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateEventNotification persists a new event notification.
func (repo *notificationRepository) CreateEventNotification(ctx context.Context, notification *entity.EventNotification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notificationM := fromEventNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event notification")
	}

	// Update the entity with generated values
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindEventNotificationByID retrieves an event notification by its unique ID.
func (repo *notificationRepository) FindEventNotificationByID(ctx context.Context, id uuid.UUID) (*entity.EventNotification, error) {
	var notificationM model.EventNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toEventNotificationDomain(&notificationM), nil
}

// BatchCreateUserNotifications persists per-user notifications in batches for better performance.
func (repo *notificationRepository) BatchCreateUserNotifications(ctx context.Context, notifications []*entity.UserNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.UserNotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID == uuid.Nil {
			notification.ID = uuid.New()
		}
		notificationModels = append(notificationModels, &model.UserNotificationModel{
			ID:                  notification.ID,
			UserID:              notification.UserID,
			EventNotificationID: notification.EventNotificationID,
			IsRead:              notification.IsRead,
		})
	}

	if err := repo.db.WithContext(ctx).
		Omit("EventNotification").
		CreateInBatches(notificationModels, userNotificationBatchSize).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid user or notification reference in batch")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create user notifications")
	}

	// Update the entities with generated values
	for i, notificationM := range notificationModels {
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// ListUserNotifications retrieves a user's notifications with pagination, newest first.
func (repo *notificationRepository) ListUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error) {
	var notificationModels []*model.UserNotificationModel

	query := repo.db.WithContext(ctx).
		Preload("EventNotification").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user notifications")
	}

	notifications := make([]*entity.UserNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toUserNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkAsRead flags a user's notification as read.
func (repo *notificationRepository) MarkAsRead(ctx context.Context, userID, userNotificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("id = ? AND user_id = ?", userNotificationID, userID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotificationNotFound
	}

	return nil
}

// FindPushRecipients lists the users holding a copy of the notification and a push token.
func (repo *notificationRepository) FindPushRecipients(ctx context.Context, eventNotificationID uuid.UUID) ([]*entity.PushRecipient, error) {
	var rows []struct {
		UserID        uuid.UUID
		ExpoPushToken string
	}

	err := repo.db.WithContext(ctx).
		Table("user_notifications").
		Select("users.id AS user_id, users.expo_push_token").
		Joins("JOIN users ON users.id = user_notifications.user_id").
		Where("user_notifications.event_notification_id = ?", eventNotificationID).
		Where("users.expo_push_token <> ''").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find push recipients")
	}

	recipients := make([]*entity.PushRecipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.PushRecipient{UserID: row.UserID, PushToken: row.ExpoPushToken})
	}

	return recipients, nil
}

// --- Mapper Functions ---

// toEventNotificationDomain converts a GORM EventNotificationModel to a domain EventNotification entity.
func toEventNotificationDomain(data *model.EventNotificationModel) *entity.EventNotification {
	if data == nil {
		return nil
	}

	return &entity.EventNotification{
		ID:        data.ID,
		EventID:   data.EventID,
		Detail:    data.Detail,
		FromAdmin: data.FromAdmin,
		CreatedAt: data.CreatedAt,
	}
}

// fromEventNotificationDomain converts a domain EventNotification entity to a GORM EventNotificationModel.
func fromEventNotificationDomain(data *entity.EventNotification) *model.EventNotificationModel {
	if data == nil {
		return nil
	}

	return &model.EventNotificationModel{
		ID:        data.ID,
		EventID:   data.EventID,
		Detail:    data.Detail,
		FromAdmin: data.FromAdmin,
		CreatedAt: data.CreatedAt,
	}
}

// toUserNotificationDomain converts a GORM UserNotificationModel to a domain UserNotification entity.
func toUserNotificationDomain(data *model.UserNotificationModel) *entity.UserNotification {
	if data == nil {
		return nil
	}

	return &entity.UserNotification{
		ID:                  data.ID,
		UserID:              data.UserID,
		EventNotificationID: data.EventNotificationID,
		IsRead:              data.IsRead,
		CreatedAt:           data.CreatedAt,
		EventNotification:   toEventNotificationDomain(data.EventNotification),
	}
}
