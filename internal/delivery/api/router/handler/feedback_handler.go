package handler

import (
	"net/http"

	"freelancer/config"
	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/response"
	"freelancer/internal/domain/entity"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC   usecase.FeedbackUsecase
	ActionItemUC usecase.ActionItemUsecase
	RevisionUC   usecase.RevisionUsecase
	Config       *config.Config
}

// FeedbackHandler serves feedback and the action items and revisions hanging off it.
type FeedbackHandler struct {
	feedbackUC   usecase.FeedbackUsecase
	actionItemUC usecase.ActionItemUsecase
	revisionUC   usecase.RevisionUsecase
	pagination   *config.PaginationConfig
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC:   params.FeedbackUC,
		actionItemUC: params.ActionItemUC,
		revisionUC:   params.RevisionUC,
		pagination:   params.Config.Pagination,
	}
}

// CreateFeedbackRequest is bounded by the request validator; the configured
// feedback.maxLength is enforced again by the usecase.
type CreateFeedbackRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	RawText   string    `json:"raw_text" validate:"required,min=1"`
}

type UpdateFeedbackRequest struct {
	RawText *string `json:"raw_text" validate:"omitempty,min=1"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending processing processed failed"`
}

type CreateActionItemRequest struct {
	Description string `json:"description" validate:"required,min=1"`
	Priority    int    `json:"priority" validate:"min=0,max=3"`
}

// CreateFeedback records client feedback on one of the caller's projects
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.feedbackUC.Create(c.Request().Context(), identity.UserID, &usecase.CreateFeedbackInput{
		ProjectID: req.ProjectID,
		RawText:   req.RawText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFeedbackResponse(feedback))
}

// GetFeedback handles retrieving one piece of feedback
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Get(c.Request().Context(), identity.UserID, feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackResponse(feedback))
}

// ListByProject handles listing a project's feedback, newest first
func (h *FeedbackHandler) ListByProject(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "project_id")
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

// UpdateFeedback handles a partial feedback update
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateFeedbackInput{RawText: req.RawText}
	if req.Status != nil {
		status := entity.FeedbackStatus(*req.Status)
		input.Status = &status
	}

	feedback, err := h.feedbackUC.Update(c.Request().Context(), identity.UserID, feedbackID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackResponse(feedback))
}

// DeleteFeedback handles deleting feedback together with its action items and revisions
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), identity.UserID, feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListActionItems handles listing the action items of a feedback, most urgent first
func (h *FeedbackHandler) ListActionItems(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.actionItemUC.ListByFeedback(c.Request().Context(), identity.UserID, feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(items, newActionItemResponse))
}

// CreateActionItem handles adding an action item to a feedback
func (h *FeedbackHandler) CreateActionItem(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.actionItemUC.Create(c.Request().Context(), identity.UserID, feedbackID, &usecase.CreateActionItemInput{
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newActionItemResponse(item))
}

// ListRevisions handles listing the revisions of a feedback, newest version first
func (h *FeedbackHandler) ListRevisions(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	revisions, err := h.revisionUC.ListByFeedback(c.Request().Context(), identity.UserID, feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(revisions, newRevisionResponse))
}
