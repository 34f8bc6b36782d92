package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinActionPriority and MaxActionPriority bound ActionItem.Priority.
	MinActionPriority = 0
	MaxActionPriority = 3
)

// ActionItem is a concrete task derived from a piece of feedback.
type ActionItem struct {
	ID          uuid.UUID
	FeedbackID  uuid.UUID
	Description string
	IsCompleted bool
	Priority    int // 0 (low) to 3 (urgent).
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
