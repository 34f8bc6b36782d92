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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProjectNotFound.WrapMessage("feedback project does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Feedback, error) {
	return repo.find(repo.db.WithContext(ctx), id, userID)
}

// LockForUser takes a row lock (SELECT ... FOR UPDATE) held until the surrounding transaction ends.
func (repo *feedbackRepository) LockForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Feedback, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id, userID)
}

func (repo *feedbackRepository) find(db *gorm.DB, id, userID uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by id")
	}

	return toFeedbackDomain(&feedbackM), nil
}

func (repo *feedbackRepository) ListByProject(ctx context.Context, projectID, userID uuid.UUID, page entity.Page) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedback = append(feedback, toFeedbackDomain(feedbackM))
	}

	return feedback, nil
}

func (repo *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ? AND user_id = ?", feedback.ID, feedback.UserID).
		Select("raw_text", "summary", "sentiment", "priority", "status", "updated_at").
		Updates(feedbackM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        data.ID,
		UserID:    data.UserID,
		ProjectID: data.ProjectID,
		RawText:   data.RawText,
		Summary:   data.Summary,
		Sentiment: data.Sentiment,
		Priority:  data.Priority,
		Status:    entity.FeedbackStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProjectID: data.ProjectID,
		RawText:   data.RawText,
		Summary:   data.Summary,
		Sentiment: data.Sentiment,
		Priority:  data.Priority,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
