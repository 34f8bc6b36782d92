package handler

import (
	"net/http"

	"freelancer/config"
	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/response"
	"freelancer/internal/domain/entity"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC  usecase.ProjectUsecase
	FeedbackUC usecase.FeedbackUsecase
	Config     *config.Config
}

// ProjectHandler serves the caller's projects.
type ProjectHandler struct {
	projectUC  usecase.ProjectUsecase
	feedbackUC usecase.FeedbackUsecase
	pagination *config.PaginationConfig
}

// NewProjectHandler is the constructor for ProjectHandler
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC:  params.ProjectUC,
		feedbackUC: params.FeedbackUC,
		pagination: params.Config.Pagination,
	}
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active archived completed"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active archived completed"`
}

// CreateProject handles creating a new project
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.projectUC.Create(c.Request().Context(), identity.UserID, &usecase.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      entity.ProjectStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProjectResponse(project))
}

// ListProjects handles listing the caller's projects, newest first
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c, h.pagination.DefaultLimit, h.pagination.MaxLimit)
	if err != nil {
		return err
	}

	projects, err := h.projectUC.List(c.Request().Context(), identity.UserID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(projects, newProjectResponse))
}

// GetProject handles retrieving one project
func (h *ProjectHandler) GetProject(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectUC.Get(c.Request().Context(), identity.UserID, projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProjectResponse(project))
}

// UpdateProject handles a partial project update
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.projectUC.Update(c.Request().Context(), identity.UserID, projectID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProjectResponse(project))
}

// DeleteProject handles deleting a project and its feedback
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectUC.Delete(c.Request().Context(), identity.UserID, projectID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListProjectFeedback handles listing the feedback of one project, newest first
func (h *ProjectHandler) ListProjectFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c, h.pagination.DefaultLimit, h.pagination.MaxLimit)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.ListByProject(c.Request().Context(), identity.UserID, projectID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(feedback, newFeedbackResponse))
}
