package handler

import (
	"net/http"

	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/response"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const revisionFileField = "file"

// RevisionHandlerParams holds dependencies for RevisionHandler, injected by Fx.
type RevisionHandlerParams struct {
	fx.In

	RevisionUC usecase.RevisionUsecase
}

type RevisionHandler struct {
	revisionUC usecase.RevisionUsecase
}

func NewRevisionHandler(params RevisionHandlerParams) *RevisionHandler {
	return &RevisionHandler{revisionUC: params.RevisionUC}
}

// CreateRevisionForm is the multipart or urlencoded body of a revision upload.
type CreateRevisionForm struct {
	FeedbackID string `form:"feedback_id" validate:"required"`
	Notes      string `form:"notes"`
}

type UpdateRevisionRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending in_review approved rejected"`
	Notes  *string `json:"notes"`
}

// CreateRevision records a new revision. Only the metadata of an attached file is kept.
func (h *RevisionHandler) CreateRevision(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	var form CreateRevisionForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revision input")
	}
	if err := c.Validate(&form); err != nil {
		return errors.WithStack(err)
	}

	feedbackID, err := uuid.Parse(form.FeedbackID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("feedback_id must be a valid UUID"))
	}

	input := &usecase.CreateRevisionInput{
		FeedbackID: feedbackID,
		Notes:      form.Notes,
	}

	fileHeader, err := c.FormFile(revisionFileField)
	switch {
	case err == nil:
		input.File = &entity.RevisionFile{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:        fileHeader.Size,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// Revisions without a file are allowed.
	default:
		return response.BindingError(c, "INVALID_INPUT", "Invalid revision file")
	}

	revision, err := h.revisionUC.Create(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRevisionResponse(revision))
}

// GetRevision handles retrieving one revision
func (h *RevisionHandler) GetRevision(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	revisionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	revision, err := h.revisionUC.Get(c.Request().Context(), identity.UserID, revisionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRevisionResponse(revision))
}

// ListByFeedback handles listing a feedback's revisions, newest version first
func (h *RevisionHandler) ListByFeedback(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	feedbackID, err := pathID(c, "feedback_id")
	if err != nil {
		return err
	}

	revisions, err := h.revisionUC.ListByFeedback(c.Request().Context(), identity.UserID, feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(revisions, newRevisionResponse))
}

// UpdateRevision handles review status changes and note edits
func (h *RevisionHandler) UpdateRevision(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	revisionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRevisionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revision input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateRevisionInput{Notes: req.Notes}
	if req.Status != nil {
		status := entity.RevisionStatus(*req.Status)
		input.Status = &status
	}

	revision, err := h.revisionUC.Update(c.Request().Context(), identity.UserID, revisionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRevisionResponse(revision))
}
