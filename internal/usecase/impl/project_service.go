package impl

import (
	"context"
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

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager repository.TransactionManager
	sanitizer service.TextSanitizer
	logger    *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sanitizer service.TextSanitizer
	Logger    *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager: params.TxManager,
		sanitizer: params.Sanitizer,
		logger:    params.Logger,
	}
}

func (srv *projectService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	status := input.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of active, archived, completed")
	}

	project := &entity.Project{
		UserID:      userID,
		Name:        name,
		Description: srv.sanitizer.Sanitize(input.Description),
		Status:      status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProjectRepo().Create(ctx, project)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	requestLogger(ctx, srv.logger).Info("Project created", slog.Any("projectID", project.ID), slog.Any("userID", userID))

	return project, nil
}

func (srv *projectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*entity.Project, error) {
	var project *entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProjectRepo().FindByIDForUser(ctx, projectID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
		}
		project = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (srv *projectService) List(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Project, error) {
	var projects []*entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProjectRepo().ListByUser(ctx, userID, page)
		if err != nil {
			return errors.Wrap(err, "failed to list projects")
		}
		projects = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (srv *projectService) Update(ctx context.Context, userID, projectID uuid.UUID, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of active, archived, completed")
	}

	var project *entity.Project
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()

		found, err := projectRepo.FindByIDForUser(ctx, projectID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
		}

		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			found.Description = srv.sanitizer.Sanitize(*input.Description)
		}
		if input.Status != nil {
			found.Status = *input.Status
		}

		if err := projectRepo.Update(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to update project")
		}
		project = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (srv *projectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProjectRepo().Delete(ctx, projectID, userID); err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to delete project")
		}

		return nil
	})
	if err != nil {
		return err
	}

	requestLogger(ctx, srv.logger).Info("Project deleted", slog.Any("projectID", projectID), slog.Any("userID", userID))

	return nil
}
