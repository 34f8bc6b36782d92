package postgres

import (
	"context"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository is the constructor for actionItemRepository.
func NewActionItemRepository(db *gorm.DB) repository.ActionItemRepository {
	return &actionItemRepository{db: db}
}

func (repo *actionItemRepository) Create(ctx context.Context, item *entity.ActionItem) error {
	itemM := fromActionItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFeedbackNotFound.WrapMessage("action item feedback does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("priority must be between 0 and 3")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create action item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *actionItemRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.ActionItem, error) {
	var itemM model.ActionItemModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN feedback ON feedback.id = action_items.feedback_id").
		Where("action_items.id = ? AND feedback.user_id = ?", id, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActionItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find action item by id")
	}

	return toActionItemDomain(&itemM), nil
}

func (repo *actionItemRepository) ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]*entity.ActionItem, error) {
	var itemModels []*model.ActionItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("feedback_id = ?", feedbackID).
		Order("priority DESC").
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list action items")
	}

	items := make([]*entity.ActionItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toActionItemDomain(itemM))
	}

	return items, nil
}

func (repo *actionItemRepository) Update(ctx context.Context, item *entity.ActionItem) error {
	itemM := fromActionItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ActionItemModel{}).
		Where("id = ?", item.ID).
		Select("description", "is_completed", "priority", "completed_at", "updated_at").
		Updates(itemM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("priority must be between 0 and 3")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update action item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActionItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *actionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ActionItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete action item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActionItemNotFound
	}

	return nil
}

func toActionItemDomain(data *model.ActionItemModel) *entity.ActionItem {
	if data == nil {
		return nil
	}

	return &entity.ActionItem{
		ID:          data.ID,
		FeedbackID:  data.FeedbackID,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CompletedAt: data.CompletedAt,
	}
}

func fromActionItemDomain(data *entity.ActionItem) *model.ActionItemModel {
	if data == nil {
		return nil
	}

	return &model.ActionItemModel{
		ID:          data.ID,
		FeedbackID:  data.FeedbackID,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CompletedAt: data.CompletedAt,
	}
}
