package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPushConcurrency = 10
	defaultPushTimeout     = 10 * time.Second
	defaultPushLanguage    = "en"
)

type pushService struct {
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	pusher           service.PushService
	translator       service.Translator
	concurrency      int
	timeout          time.Duration
	language         string
	logger           *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Pusher           service.PushService
	Translator       service.Translator
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPushService creates the push fanout usecase.
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	srv := &pushService{
		eventRepo:        params.EventRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		pusher:           params.Pusher,
		translator:       params.Translator,
		concurrency:      defaultPushConcurrency,
		timeout:          defaultPushTimeout,
		language:         defaultPushLanguage,
		logger:           params.Logger,
	}

	if cfg := params.Config.Push; cfg != nil {
		if cfg.Concurrency > 0 {
			srv.concurrency = cfg.Concurrency
		}
		if cfg.Timeout > 0 {
			srv.timeout = cfg.Timeout
		}
		if cfg.Language != "" {
			srv.language = cfg.Language
		}
	}

	return srv
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DispatchNotification implements service.NotificationDispatcher.
func (srv *pushService) DispatchNotification(ctx context.Context, event *service.NotificationEvent) error {
	_, err := srv.Deliver(ctx, event)

	return err
}

// Deliver sends one push per recipient in parallel. Individual send failures are counted, not returned;
// only failures to load the notification are returned, as retryable.
func (srv *pushService) Deliver(ctx context.Context, event *service.NotificationEvent) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{}

	notificationID, err := uuid.Parse(event.EventNotificationID)
	if err != nil {
		return result, errors.Wrapf(err, "invalid event notification id %q", event.EventNotificationID)
	}

	notification, err := srv.notificationRepo.FindEventNotificationByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		srv.log(ctx).Warn("Notification no longer exists, skipping push", slog.Any("notificationID", notificationID))

		return result, nil
	}
	if err != nil {
		return result, usecase.NewRetryableError(errors.Wrap(err, "failed to load notification"))
	}

	ev, err := srv.eventRepo.FindByID(ctx, notification.EventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		srv.log(ctx).Warn("Event no longer exists, skipping push", slog.Any("eventID", notification.EventID))

		return result, nil
	}
	if err != nil {
		return result, usecase.NewRetryableError(errors.Wrap(err, "failed to load event"))
	}

	recipients, err := srv.notificationRepo.FindPushRecipients(ctx, notificationID)
	if err != nil {
		return result, usecase.NewRetryableError(errors.Wrap(err, "failed to load push recipients"))
	}
	result.Recipients = len(recipients)

	title := srv.translator.T(srv.language, service.MessagePushEventUpdateTitle, map[string]any{"EventName": ev.Name})
	data := pushData(notification)

	var sent, failed, invalid atomic.Int64
	var group errgroup.Group
	group.SetLimit(srv.concurrency)

	for _, recipient := range recipients {
		group.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, srv.timeout)
			defer cancel()

			err := srv.pusher.SendSingleNotification(sendCtx, recipient.PushToken, title, notification.Detail, data)
			if err == nil {
				sent.Add(1)

				return nil
			}

			failed.Add(1)
			srv.log(ctx).Warn("Push delivery failed",
				slog.Any("userID", recipient.UserID),
				slog.Any("notificationID", notificationID),
				slog.Any("error", err),
			)

			if errors.Is(err, service.ErrInvalidPushToken) {
				invalid.Add(1)
				if clearErr := srv.userRepo.ClearPushToken(ctx, recipient.PushToken); clearErr != nil {
					srv.log(ctx).Error("Failed to clear invalid push token", slog.Any("userID", recipient.UserID), slog.Any("error", clearErr))
				}
			}

			return nil
		})
	}
	_ = group.Wait()

	result.Sent = int(sent.Load())
	result.Failed = int(failed.Load())
	result.InvalidTokens = int(invalid.Load())

	srv.log(ctx).Info("Push fanout finished",
		slog.Any("notificationID", notificationID),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

func pushData(notification *entity.EventNotification) map[string]string {
	return map[string]string{
		"event_notification_id": notification.ID.String(),
		"event_id":              notification.EventID.String(),
		"detail":                notification.Detail,
		"time_created":          notification.CreatedAt.UTC().Format(time.RFC3339),
		"from_admin":            strconv.FormatBool(notification.FromAdmin),
	}
}
