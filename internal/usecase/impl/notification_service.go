package impl

import (
	"context"
	"log/slog"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(txManager repository.TransactionManager, clock service.Clock, logger *slog.Logger) usecase.NotificationUsecase {
	if clock == nil {
		clock = service.SystemClock
	}

	return &notificationService{
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.Page) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().ListByUser(ctx, userID, unreadOnly, page)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	var notification *entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().MarkRead(ctx, notificationID, userID, srv.clock())
		if err != nil {
			return translateNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to mark notification as read")
		}
		notification = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notification, nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var marked int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.NotificationRepo().MarkAllRead(ctx, userID, srv.clock())
		if err != nil {
			return errors.Wrap(err, "failed to mark notifications as read")
		}
		marked = count

		return nil
	})
	if err != nil {
		return 0, err
	}

	requestLogger(ctx, srv.logger).Debug("Notifications marked as read", slog.Any("userID", userID), slog.Int64("count", marked))

	return marked, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().CountUnread(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
