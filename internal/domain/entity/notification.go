package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType labels what triggered an in-app notification.
type NotificationType string

const (
	NotificationFeedbackReceived NotificationType = "feedback_received"
	NotificationRevisionUploaded NotificationType = "revision_uploaded"
	NotificationRevisionApproved NotificationType = "revision_approved"
)

// Notification is an in-app message for a user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	Metadata  map[string]any
	CreatedAt time.Time
	ReadAt    *time.Time
}
