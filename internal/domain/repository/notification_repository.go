package repository

import (
	"context"
	"errors"
	"time"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when no notification with the id exists for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns notifications newest first, optionally only unread ones.
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.Page) ([]*entity.Notification, error)

	// MarkRead flags one notification as read and returns its new state.
	MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) (*entity.Notification, error)

	// MarkAllRead flags every unread notification of the user and reports how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
