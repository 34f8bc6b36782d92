package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput defines the data required to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      entity.ProjectStatus // Empty means active.
}

// UpdateProjectInput carries the optional fields of a project update.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *entity.ProjectStatus
}

// ProjectUsecase manages the caller's projects.
type ProjectUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*entity.Project, error)
	List(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, input *UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}
