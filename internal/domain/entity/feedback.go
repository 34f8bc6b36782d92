package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus tracks how far a piece of feedback has been processed.
type FeedbackStatus string

const (
	FeedbackStatusPending    FeedbackStatus = "pending"
	FeedbackStatusProcessing FeedbackStatus = "processing"
	FeedbackStatusProcessed  FeedbackStatus = "processed"
	FeedbackStatusFailed     FeedbackStatus = "failed"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackStatusPending, FeedbackStatusProcessing, FeedbackStatusProcessed, FeedbackStatusFailed:
		return true
	default:
		return false
	}
}

// Feedback is a block of raw client feedback attached to a project.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner, denormalised from the project for direct filtering.
	ProjectID uuid.UUID
	RawText   string
	Summary   map[string]any // Structured summary, filled by an external analyzer.
	Sentiment string
	Priority  string
	Status    FeedbackStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
