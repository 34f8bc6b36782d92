package repository

import (
	"context"
	"errors"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrActionItemNotFound is returned when no action item with the id is reachable by the owner.
var ErrActionItemNotFound = errors.New("action item not found")

// ActionItemRepository persists action items. Ownership is resolved through the parent feedback.
type ActionItemRepository interface {
	Create(ctx context.Context, item *entity.ActionItem) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.ActionItem, error)

	// ListByFeedback returns the items of the feedback, highest priority first.
	ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]*entity.ActionItem, error)
	Update(ctx context.Context, item *entity.ActionItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
