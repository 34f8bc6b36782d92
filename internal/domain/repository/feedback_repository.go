package repository

import (
	"context"
	"errors"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when no feedback with the id exists for the owner.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists client feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Feedback, error)

	// LockForUser loads the feedback row with a write lock held until the transaction ends.
	LockForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Feedback, error)

	// ListByProject returns the project's feedback, newest first.
	ListByProject(ctx context.Context, projectID, userID uuid.UUID, page entity.Page) ([]*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
