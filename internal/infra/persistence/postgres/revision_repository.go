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

const revisionVersionConstraint = "uq_revisions_feedback_version"

type revisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository is the constructor for revisionRepository.
func NewRevisionRepository(db *gorm.DB) repository.RevisionRepository {
	return &revisionRepository{db: db}
}

func (repo *revisionRepository) Create(ctx context.Context, revision *entity.Revision) error {
	revisionM := fromRevisionDomain(revision)

	if err := repo.db.WithContext(ctx).Create(revisionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if name := pgConstraintName(err); name == "" || name == revisionVersionConstraint {
				return repository.ErrRevisionVersionTaken
			}
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFeedbackNotFound.WrapMessage("revision feedback does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create revision")
	}

	revision.ID = revisionM.ID
	revision.CreatedAt = revisionM.CreatedAt
	revision.UpdatedAt = revisionM.UpdatedAt

	return nil
}

// FindByIDForUser resolves ownership through the parent feedback.
func (repo *revisionRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Revision, error) {
	var revisionM model.RevisionModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN feedback ON feedback.id = revisions.feedback_id").
		Where("revisions.id = ? AND feedback.user_id = ?", id, userID).
		First(&revisionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRevisionNotFound
		}

		return nil, errors.Wrap(err, "failed to find revision by id")
	}

	return toRevisionDomain(&revisionM), nil
}

func (repo *revisionRepository) ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]*entity.Revision, error) {
	var revisionModels []*model.RevisionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("feedback_id = ?", feedbackID).
		Order("version DESC").
		Find(&revisionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list revisions")
	}

	revisions := make([]*entity.Revision, 0, len(revisionModels))
	for _, revisionM := range revisionModels {
		revisions = append(revisions, toRevisionDomain(revisionM))
	}

	return revisions, nil
}

// LatestVersion must run on the primary inside the transaction holding the feedback lock.
func (repo *revisionRepository) LatestVersion(ctx context.Context, feedbackID uuid.UUID) (int, error) {
	var latest int

	if err := repo.db.WithContext(ctx).
		Model(&model.RevisionModel{}).
		Where("feedback_id = ?", feedbackID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&latest).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read latest revision version")
	}

	return latest, nil
}

func (repo *revisionRepository) Update(ctx context.Context, revision *entity.Revision) error {
	revisionM := fromRevisionDomain(revision)

	result := repo.db.WithContext(ctx).
		Model(&model.RevisionModel{}).
		Where("id = ?", revision.ID).
		Select("status", "notes", "approved_at", "updated_at").
		Updates(revisionM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update revision")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRevisionNotFound
	}

	revision.UpdatedAt = revisionM.UpdatedAt

	return nil
}

func toRevisionDomain(data *model.RevisionModel) *entity.Revision {
	if data == nil {
		return nil
	}

	return &entity.Revision{
		ID:         data.ID,
		FeedbackID: data.FeedbackID,
		Version:    data.Version,
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileSize:   data.FileSize,
		FileType:   data.FileType,
		Status:     entity.RevisionStatus(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		ApprovedAt: data.ApprovedAt,
	}
}

func fromRevisionDomain(data *entity.Revision) *model.RevisionModel {
	if data == nil {
		return nil
	}

	return &model.RevisionModel{
		ID:         data.ID,
		FeedbackID: data.FeedbackID,
		Version:    data.Version,
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileSize:   data.FileSize,
		FileType:   data.FileType,
		Status:     string(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		ApprovedAt: data.ApprovedAt,
	}
}
