package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateActionItemInput defines a task derived from feedback.
type CreateActionItemInput struct {
	Description string
	Priority    int
}

// UpdateActionItemInput carries the optional fields of an action item update.
type UpdateActionItemInput struct {
	Description *string
	IsCompleted *bool
	Priority    *int
}

// ActionItemUsecase manages action items. Ownership is checked through the parent feedback.
type ActionItemUsecase interface {
	Create(ctx context.Context, userID, feedbackID uuid.UUID, input *CreateActionItemInput) (*entity.ActionItem, error)
	ListByFeedback(ctx context.Context, userID, feedbackID uuid.UUID) ([]*entity.ActionItem, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, input *UpdateActionItemInput) (*entity.ActionItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}
