package handler

import (
	"net/http"
	"testing"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	mockUsecase "freelancer/internal/mocks/usecase"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedbackRoutes struct {
	e            *echo.Echo
	identity     *entity.Identity
	feedbackUC   *mockUsecase.MockFeedbackUsecase
	actionItemUC *mockUsecase.MockActionItemUsecase
	revisionUC   *mockUsecase.MockRevisionUsecase
}

func newFeedbackRoutes(t *testing.T) *feedbackRoutes {
	r := &feedbackRoutes{
		e:            newTestEcho(),
		identity:     newIdentity(),
		feedbackUC:   mockUsecase.NewMockFeedbackUsecase(t),
		actionItemUC: mockUsecase.NewMockActionItemUsecase(t),
		revisionUC:   mockUsecase.NewMockRevisionUsecase(t),
	}
	h := NewFeedbackHandler(FeedbackHandlerParams{
		FeedbackUC:   r.feedbackUC,
		ActionItemUC: r.actionItemUC,
		RevisionUC:   r.revisionUC,
		Config:       newTestConfig(),
	})
	actions := NewActionItemHandler(ActionItemHandlerParams{ActionItemUC: r.actionItemUC})

	g := r.e.Group("", as(r.identity))
	g.POST("/feedback", h.CreateFeedback)
	g.GET("/feedback/project/:project_id", h.ListByProject)
	g.GET("/feedback/:id", h.GetFeedback)
	g.PUT("/feedback/:id", h.UpdateFeedback)
	g.DELETE("/feedback/:id", h.DeleteFeedback)
	g.GET("/feedback/:id/actions", h.ListActionItems)
	g.POST("/feedback/:id/actions", h.CreateActionItem)
	g.GET("/feedback/:id/revisions", h.ListRevisions)
	g.PUT("/actions/:id", actions.UpdateActionItem)
	g.DELETE("/actions/:id", actions.DeleteActionItem)

	return r
}

func TestFeedbackHandler_Create(t *testing.T) {
	r := newFeedbackRoutes(t)
	projectID := uuid.New()

	r.feedbackUC.EXPECT().Create(mock.Anything, r.identity.UserID, &usecase.CreateFeedbackInput{ProjectID: projectID, RawText: "Bigger logo"}).
		Return(&entity.Feedback{ID: uuid.New(), ProjectID: projectID, RawText: "Bigger logo", Status: entity.FeedbackStatusPending}, nil)
	r.feedbackUC.EXPECT().Create(mock.Anything, r.identity.UserID, mock.Anything).
		Return(nil, domainerrors.ErrProjectNotFound).Maybe()

	rec := serve(r.e, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"project_id": projectID, "raw_text": "Bigger logo"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.FeedbackStatusPending, decodeData[FeedbackResponse](t, rec).Status)

	rec = serve(r.e, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"project_id": uuid.New(), "raw_text": "x"}))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROJECT_NOT_FOUND", decode(t, rec).Error.Code)

	rec = serve(r.e, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"raw_text": "no project"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r.e, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"project_id": "nope", "raw_text": "x"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackHandler_UpdateAndDelete(t *testing.T) {
	r := newFeedbackRoutes(t)
	feedbackID := uuid.New()
	processed := entity.FeedbackStatusProcessed

	r.feedbackUC.EXPECT().Update(mock.Anything, r.identity.UserID, feedbackID, &usecase.UpdateFeedbackInput{Status: &processed}).
		Return(&entity.Feedback{ID: feedbackID, Status: processed}, nil)
	r.feedbackUC.EXPECT().Delete(mock.Anything, r.identity.UserID, feedbackID).Return(nil)

	rec := serve(r.e, jsonRequest(t, http.MethodPut, "/feedback/"+feedbackID.String(), map[string]string{"status": "processed"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, processed, decodeData[FeedbackResponse](t, rec).Status)

	rec = serve(r.e, jsonRequest(t, http.MethodPut, "/feedback/"+feedbackID.String(), map[string]string{"status": "done"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r.e, jsonRequest(t, http.MethodDelete, "/feedback/"+feedbackID.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFeedbackHandler_ActionItems(t *testing.T) {
	r := newFeedbackRoutes(t)
	feedbackID, itemID := uuid.New(), uuid.New()

	r.actionItemUC.EXPECT().Create(mock.Anything, r.identity.UserID, feedbackID, &usecase.CreateActionItemInput{Description: "Resize logo", Priority: 2}).
		Return(&entity.ActionItem{ID: itemID, FeedbackID: feedbackID, Description: "Resize logo", Priority: 2}, nil)
	r.actionItemUC.EXPECT().ListByFeedback(mock.Anything, r.identity.UserID, feedbackID).
		Return([]*entity.ActionItem{{ID: itemID, Priority: 2}}, nil)
	r.actionItemUC.EXPECT().Update(mock.Anything, r.identity.UserID, itemID, mock.MatchedBy(func(in *usecase.UpdateActionItemInput) bool {
		return in.IsCompleted != nil && *in.IsCompleted && in.Priority == nil && in.Description == nil
	})).Return(&entity.ActionItem{ID: itemID, IsCompleted: true, CompletedAt: &testNow}, nil)
	r.actionItemUC.EXPECT().Delete(mock.Anything, r.identity.UserID, itemID).Return(domainerrors.ErrActionItemNotFound)

	rec := serve(r.e, jsonRequest(t, http.MethodPost, "/feedback/"+feedbackID.String()+"/actions", map[string]any{"description": "Resize logo", "priority": 2}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(r.e, jsonRequest(t, http.MethodPost, "/feedback/"+feedbackID.String()+"/actions", map[string]any{"description": "Resize logo", "priority": 4}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r.e, jsonRequest(t, http.MethodGet, "/feedback/"+feedbackID.String()+"/actions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]ActionItemResponse](t, rec), 1)

	rec = serve(r.e, jsonRequest(t, http.MethodPut, "/actions/"+itemID.String(), map[string]any{"is_completed": true}))
	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeData[ActionItemResponse](t, rec)
	assert.True(t, item.IsCompleted)
	assert.NotNil(t, item.CompletedAt)

	rec = serve(r.e, jsonRequest(t, http.MethodDelete, "/actions/"+itemID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackHandler_ListRevisions(t *testing.T) {
	r := newFeedbackRoutes(t)
	feedbackID := uuid.New()

	r.revisionUC.EXPECT().ListByFeedback(mock.Anything, r.identity.UserID, feedbackID).
		Return([]*entity.Revision{{Version: 2}, {Version: 1}}, nil)

	rec := serve(r.e, jsonRequest(t, http.MethodGet, "/feedback/"+feedbackID.String()+"/revisions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	revisions := decodeData[[]RevisionResponse](t, rec)
	require.Len(t, revisions, 2)
	assert.Equal(t, 2, revisions[0].Version)
}
