package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase lists and acknowledges the caller's in-app notifications.
type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.Page) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
