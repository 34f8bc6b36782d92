package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedbackInput defines the data required to record client feedback.
type CreateFeedbackInput struct {
	ProjectID uuid.UUID
	RawText   string
}

// UpdateFeedbackInput carries the optional fields of a feedback update.
type UpdateFeedbackInput struct {
	RawText *string
	Status  *entity.FeedbackStatus
}

// FeedbackUsecase manages feedback on the caller's projects.
type FeedbackUsecase interface {
	// Create stores the feedback and a feedback_received notification atomically.
	Create(ctx context.Context, userID uuid.UUID, input *CreateFeedbackInput) (*entity.Feedback, error)
	Get(ctx context.Context, userID, feedbackID uuid.UUID) (*entity.Feedback, error)
	ListByProject(ctx context.Context, userID, projectID uuid.UUID, page entity.Page) ([]*entity.Feedback, error)
	Update(ctx context.Context, userID, feedbackID uuid.UUID, input *UpdateFeedbackInput) (*entity.Feedback, error)
	Delete(ctx context.Context, userID, feedbackID uuid.UUID) error
}
