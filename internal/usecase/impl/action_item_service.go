package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// actionItemService implements the ActionItemUsecase interface.
type actionItemService struct {
	txManager repository.TransactionManager
	sanitizer service.TextSanitizer
	clock     service.Clock
	logger    *slog.Logger
}

// ActionItemServiceParams holds dependencies for actionItemService, injected by Fx.
type ActionItemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sanitizer service.TextSanitizer
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewActionItemService is the constructor for actionItemService.
func NewActionItemService(params ActionItemServiceParams) usecase.ActionItemUsecase {
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock
	}

	return &actionItemService{
		txManager: params.TxManager,
		sanitizer: params.Sanitizer,
		clock:     clock,
		logger:    params.Logger,
	}
}

func validatePriority(priority int) error {
	if priority < entity.MinActionPriority || priority > entity.MaxActionPriority {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("priority must be between %d and %d", entity.MinActionPriority, entity.MaxActionPriority))
	}

	return nil
}

func (srv *actionItemService) Create(ctx context.Context, userID, feedbackID uuid.UUID, input *usecase.CreateActionItemInput) (*entity.ActionItem, error) {
	description := srv.sanitizer.Sanitize(input.Description)
	if strings.TrimSpace(description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description is required")
	}
	if err := validatePriority(input.Priority); err != nil {
		return nil, err
	}

	item := &entity.ActionItem{
		FeedbackID:  feedbackID,
		Description: description,
		Priority:    input.Priority,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.FeedbackRepo().FindByIDForUser(ctx, feedbackID, userID); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to find feedback")
		}

		return repoFactory.ActionItemRepo().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Debug("Action item created", slog.Any("actionItemID", item.ID), slog.Any("feedbackID", feedbackID))

	return item, nil
}

// ListByFeedback returns the items highest priority first.
func (srv *actionItemService) ListByFeedback(ctx context.Context, userID, feedbackID uuid.UUID) ([]*entity.ActionItem, error) {
	var items []*entity.ActionItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.FeedbackRepo().FindByIDForUser(ctx, feedbackID, userID); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to find feedback")
		}

		found, err := repoFactory.ActionItemRepo().ListByFeedback(ctx, feedbackID)
		if err != nil {
			return errors.Wrap(err, "failed to list action items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Update stamps completed_at when an item is completed and clears it when reopened.
func (srv *actionItemService) Update(ctx context.Context, userID, itemID uuid.UUID, input *usecase.UpdateActionItemInput) (*entity.ActionItem, error) {
	var description string
	if input.Description != nil {
		description = srv.sanitizer.Sanitize(*input.Description)
		if strings.TrimSpace(description) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("description must not be empty")
		}
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
	}

	var item *entity.ActionItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ActionItemRepo()

		found, err := itemRepo.FindByIDForUser(ctx, itemID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrActionItemNotFound, domainerrors.ErrActionItemNotFound, "failed to find action item")
		}

		if input.Description != nil {
			found.Description = description
		}
		if input.Priority != nil {
			found.Priority = *input.Priority
		}
		if input.IsCompleted != nil {
			wasCompleted := found.IsCompleted
			found.IsCompleted = *input.IsCompleted
			if found.IsCompleted && !wasCompleted {
				completedAt := srv.clock()
				found.CompletedAt = &completedAt
			} else if !found.IsCompleted {
				found.CompletedAt = nil
			}
		}

		if err := itemRepo.Update(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrActionItemNotFound, domainerrors.ErrActionItemNotFound, "failed to update action item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *actionItemService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ActionItemRepo()

		if _, err := itemRepo.FindByIDForUser(ctx, itemID, userID); err != nil {
			return translateNotFound(err, repository.ErrActionItemNotFound, domainerrors.ErrActionItemNotFound, "failed to find action item")
		}
		if err := itemRepo.Delete(ctx, itemID); err != nil {
			return translateNotFound(err, repository.ErrActionItemNotFound, domainerrors.ErrActionItemNotFound, "failed to delete action item")
		}

		return nil
	})
}
