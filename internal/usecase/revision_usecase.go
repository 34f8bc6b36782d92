package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRevisionInput defines a new revision. File is nil when nothing was uploaded.
type CreateRevisionInput struct {
	FeedbackID uuid.UUID
	Notes      string
	File       *entity.RevisionFile
}

// UpdateRevisionInput carries the optional fields of a revision update.
type UpdateRevisionInput struct {
	Status *entity.RevisionStatus
	Notes  *string
}

// RevisionUsecase manages the numbered revisions produced for feedback.
type RevisionUsecase interface {
	// Create assigns the next version and emits revision_uploaded in one transaction.
	Create(ctx context.Context, userID uuid.UUID, input *CreateRevisionInput) (*entity.Revision, error)
	Get(ctx context.Context, userID, revisionID uuid.UUID) (*entity.Revision, error)
	ListByFeedback(ctx context.Context, userID, feedbackID uuid.UUID) ([]*entity.Revision, error)

	// Update emits revision_approved when the status moves to approved.
	Update(ctx context.Context, userID, revisionID uuid.UUID, input *UpdateRevisionInput) (*entity.Revision, error)
}
