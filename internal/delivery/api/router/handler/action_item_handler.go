package handler

import (
	"net/http"

	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/response"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActionItemHandlerParams holds dependencies for ActionItemHandler, injected by Fx.
type ActionItemHandlerParams struct {
	fx.In

	ActionItemUC usecase.ActionItemUsecase
}

type ActionItemHandler struct {
	actionItemUC usecase.ActionItemUsecase
}

func NewActionItemHandler(params ActionItemHandlerParams) *ActionItemHandler {
	return &ActionItemHandler{actionItemUC: params.ActionItemUC}
}

type UpdateActionItemRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1"`
	IsCompleted *bool   `json:"is_completed"`
	Priority    *int    `json:"priority" validate:"omitempty,min=0,max=3"`
}

// UpdateActionItem handles a partial update, including completion
func (h *ActionItemHandler) UpdateActionItem(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.actionItemUC.Update(c.Request().Context(), identity.UserID, itemID, &usecase.UpdateActionItemInput{
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActionItemResponse(item))
}

// DeleteActionItem handles deleting an action item
func (h *ActionItemHandler) DeleteActionItem(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.actionItemUC.Delete(c.Request().Context(), identity.UserID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
