package repository

import (
	"context"
	"errors"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when no project with the id exists for the owner.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository persists projects. Every lookup is scoped to the owning user.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Project, error)
	// ListByUser returns the user's projects, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
