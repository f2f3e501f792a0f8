package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100
)

type notificationService struct {
	txManager        repository.TransactionManager
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	EventRepo        repository.EventRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		eventRepo:        params.EventRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEventNotification lets an organizer post an update to every current participant.
func (srv *notificationService) CreateEventNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.EventNotification, error) {
	if _, err := srv.eventRepo.FindByID(ctx, input.EventID); err != nil {
		return nil, mapEventError(err)
	}

	isOrganizer, err := srv.eventRepo.IsOrganizer(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check organizer")
	}
	if !isOrganizer {
		srv.log(ctx).Warn("Notification rejected, caller is not organizer",
			slog.Any("eventID", input.EventID),
			slog.Any("userID", input.UserID),
		)

		return nil, domainerrors.ErrNotOrganizer
	}

	return srv.fanout(ctx, input.EventID, input.Detail, false)
}

// CreateAdminNotification posts a staff update to every current participant.
func (srv *notificationService) CreateAdminNotification(ctx context.Context, eventID uuid.UUID, detail string) (*entity.EventNotification, error) {
	return srv.fanout(ctx, eventID, detail, true)
}

// fanout materialises one UserNotification per participant. The event row is share-locked so no join
// commits between the participant snapshot and the inserts.
func (srv *notificationService) fanout(ctx context.Context, eventID uuid.UUID, detail string, fromAdmin bool) (*entity.EventNotification, error) {
	if strings.TrimSpace(detail) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("detail is required")
	}

	notification := &entity.EventNotification{
		EventID:   eventID,
		Detail:    detail,
		FromAdmin: fromAdmin,
	}
	var recipients int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.EventRepo().LockByID(ctx, eventID, repository.LockForShare); err != nil {
			return err
		}

		notificationRepo := repoFactory.NotificationRepo()
		if err := notificationRepo.CreateEventNotification(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create event notification")
		}

		userIDs, err := repoFactory.ParticipationRepo().ListUserIDsByEvent(ctx, eventID)
		if err != nil {
			return errors.Wrap(err, "failed to list participants")
		}
		recipients = len(userIDs)
		if recipients == 0 {
			return nil
		}

		userNotifications := make([]*entity.UserNotification, 0, len(userIDs))
		for _, userID := range userIDs {
			userNotifications = append(userNotifications, &entity.UserNotification{
				UserID:              userID,
				EventNotificationID: notification.ID,
			})
		}

		return notificationRepo.BatchCreateUserNotifications(ctx, userNotifications)
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to create notification", slog.Any("eventID", eventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute notification transaction")
	}

	srv.log(ctx).Info("Notification materialised",
		slog.Any("notificationID", notification.ID),
		slog.Any("eventID", eventID),
		slog.Int("recipients", recipients),
		slog.Bool("fromAdmin", fromAdmin),
	)

	srv.publish(ctx, notification, recipients)

	return notification, nil
}

// publish queues push delivery. Failure leaves the in-app notifications in place and is only logged.
func (srv *notificationService) publish(ctx context.Context, notification *entity.EventNotification, recipients int) {
	if recipients == 0 {
		return
	}

	event := &service.NotificationEvent{
		RequestID:           deliverycontext.GetRequestIDFromContext(ctx),
		EventNotificationID: notification.ID.String(),
		EventID:             notification.EventID.String(),
		RecipientCount:      recipients,
	}

	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish notification event",
			slog.Any("notificationID", notification.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) ListUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserError(err)
	}

	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if limit > maxNotificationPageSize {
		limit = maxNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := srv.notificationRepo.ListUserNotifications(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user notifications")
	}

	return notifications, nil
}

func (srv *notificationService) MarkNotificationRead(ctx context.Context, userID, userNotificationID uuid.UUID) error {
	err := srv.notificationRepo.MarkAsRead(ctx, userID, userNotificationID)
	if errors.Is(err, repository.ErrUserNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to mark notification read")
}
