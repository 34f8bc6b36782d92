package handler

import (
	"net/http"
	"testing"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	mockUsecase "freelancer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationRoutes(t *testing.T) (*echo.Echo, *entity.Identity, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	identity := newIdentity()
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Config: newTestConfig()})

	e := newTestEcho()
	g := e.Group("/notifications", as(identity))
	g.GET("", h.ListNotifications)
	g.GET("/unread-count", h.UnreadCount)
	g.PUT("/read-all", h.MarkAllRead)
	g.PUT("/:id/read", h.MarkRead)

	return e, identity, notificationUC
}

func TestNotificationHandler_List(t *testing.T) {
	e, identity, notificationUC := newNotificationRoutes(t)

	notificationUC.EXPECT().List(mock.Anything, identity.UserID, false, entity.Page{Limit: 50}).
		Return([]*entity.Notification{{
			ID:       uuid.New(),
			UserID:   identity.UserID,
			Type:     entity.NotificationFeedbackReceived,
			Title:    "New feedback received",
			Metadata: map[string]any{"project_id": "p1"},
		}}, nil)
	notificationUC.EXPECT().List(mock.Anything, identity.UserID, true, entity.Page{Skip: 5, Limit: 20}).
		Return(nil, nil)

	rec := serve(e, jsonRequest(t, http.MethodGet, "/notifications", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeData[[]NotificationResponse](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, entity.NotificationFeedbackReceived, listed[0].Type)
	assert.Equal(t, "p1", listed[0].Metadata["project_id"])
	assert.False(t, listed[0].IsRead)

	rec = serve(e, jsonRequest(t, http.MethodGet, "/notifications?unread_only=true&skip=5&limit=20", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(decode(t, rec).Data))

	rec = serve(e, jsonRequest(t, http.MethodGet, "/notifications?unread_only=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_MarkReadAndCounts(t *testing.T) {
	e, identity, notificationUC := newNotificationRoutes(t)
	notificationID := uuid.New()

	notificationUC.EXPECT().MarkRead(mock.Anything, identity.UserID, notificationID).
		Return(&entity.Notification{ID: notificationID, IsRead: true, ReadAt: &testNow}, nil)
	notificationUC.EXPECT().MarkRead(mock.Anything, identity.UserID, mock.Anything).
		Return(nil, domainerrors.ErrNotificationNotFound).Maybe()
	notificationUC.EXPECT().MarkAllRead(mock.Anything, identity.UserID).Return(int64(3), nil)
	notificationUC.EXPECT().UnreadCount(mock.Anything, identity.UserID).Return(int64(0), nil)

	rec := serve(e, jsonRequest(t, http.MethodPut, "/notifications/"+notificationID.String()+"/read", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[NotificationResponse](t, rec).IsRead)

	rec = serve(e, jsonRequest(t, http.MethodPut, "/notifications/"+uuid.NewString()+"/read", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, jsonRequest(t, http.MethodPut, "/notifications/read-all", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MarkAllReadResponse{MarkedRead: 3}, decodeData[MarkAllReadResponse](t, rec))

	rec = serve(e, jsonRequest(t, http.MethodGet, "/notifications/unread-count", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread_count":0}`, string(decode(t, rec).Data))
}
