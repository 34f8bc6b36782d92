package handler

import (
	"net/http"

	"freelancer/config"
	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/response"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Config         *config.Config
}

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	pagination     *config.PaginationConfig
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		pagination:     params.Config.Pagination,
	}
}

type MarkAllReadResponse struct {
	MarkedRead int64 `json:"marked_read"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// ListNotifications handles listing notifications, newest first, optionally unread only
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	unreadOnly, err := boolQuery(c, "unread_only")
	if err != nil {
		return err
	}

	page, err := pageQuery(c, h.pagination.NotificationLimit, h.pagination.MaxLimit)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), identity.UserID, unreadOnly, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapAll(notifications, newNotificationResponse))
}

// MarkRead handles marking one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.MarkRead(c.Request().Context(), identity.UserID, notificationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNotificationResponse(notification))
}

// MarkAllRead handles marking every unread notification as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	marked, err := h.notificationUC.MarkAllRead(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MarkAllReadResponse{MarkedRead: marked})
}

// UnreadCount handles counting unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	identity, err := apimiddleware.Identity(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}
