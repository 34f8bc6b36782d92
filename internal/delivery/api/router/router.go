// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freelancer/config"
	"freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/router/handler"
	"freelancer/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	FeedbackHandler     *handler.FeedbackHandler
	ActionItemHandler   *handler.ActionItemHandler
	RevisionHandler     *handler.RevisionHandler
	NotificationHandler *handler.NotificationHandler
	SystemHandler       *handler.SystemHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiters        *middleware.RateLimiters `optional:"true"`
	Gatherer            prometheus.Gatherer      `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.SystemHandler.Root)
	e.GET("/health", r.SystemHandler.Health)
	e.GET("/health/db", r.SystemHandler.DatabaseHealth)

	if r.Gatherer != nil && r.Config.Metrics != nil && r.Config.Metrics.Enabled {
		e.GET(r.Config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.Gatherer)))
	}

	apiV1 := e.Group("/api/v1")
	if r.RateLimiters != nil {
		apiV1.Use(r.RateLimiters.API.Handle)
	}
	authenticated := r.AuthMiddleware.Authenticate

	authGroup := apiV1.Group("/auth")
	{
		credentials := []echo.MiddlewareFunc{}
		if r.RateLimiters != nil {
			credentials = append(credentials, r.RateLimiters.Auth.Handle)
		}
		authGroup.POST("/register", r.AuthHandler.Register, credentials...)
		authGroup.POST("/login", r.AuthHandler.Login, credentials...)
		authGroup.POST("/refresh", r.AuthHandler.Refresh, credentials...)
		authGroup.GET("/me", r.AuthHandler.Me, authenticated)
		authGroup.POST("/logout", r.AuthHandler.Logout, authenticated)
	}

	usersGroup := apiV1.Group("/users", authenticated)
	{
		usersGroup.GET("/me", r.UserHandler.GetProfile)
		usersGroup.PUT("/me", r.UserHandler.UpdateProfile)
		usersGroup.DELETE("/me", r.UserHandler.DeleteAccount)
		usersGroup.GET("/me/stats", r.UserHandler.GetStats)
	}

	projectsGroup := apiV1.Group("/projects", authenticated)
	{
		projectsGroup.POST("", r.ProjectHandler.CreateProject)
		projectsGroup.POST("/", r.ProjectHandler.CreateProject)
		projectsGroup.GET("", r.ProjectHandler.ListProjects)
		projectsGroup.GET("/", r.ProjectHandler.ListProjects)
		projectsGroup.GET("/:id", r.ProjectHandler.GetProject)
		projectsGroup.PUT("/:id", r.ProjectHandler.UpdateProject)
		projectsGroup.DELETE("/:id", r.ProjectHandler.DeleteProject)
		projectsGroup.GET("/:id/feedback", r.ProjectHandler.ListProjectFeedback)
	}

	feedbackGroup := apiV1.Group("/feedback", authenticated)
	{
		feedbackGroup.POST("", r.FeedbackHandler.CreateFeedback)
		feedbackGroup.POST("/", r.FeedbackHandler.CreateFeedback)
		feedbackGroup.GET("/project/:project_id", r.FeedbackHandler.ListByProject)
		feedbackGroup.GET("/:id", r.FeedbackHandler.GetFeedback)
		feedbackGroup.PUT("/:id", r.FeedbackHandler.UpdateFeedback)
		feedbackGroup.DELETE("/:id", r.FeedbackHandler.DeleteFeedback)
		feedbackGroup.GET("/:id/actions", r.FeedbackHandler.ListActionItems)
		feedbackGroup.POST("/:id/actions", r.FeedbackHandler.CreateActionItem)
		feedbackGroup.GET("/:id/revisions", r.FeedbackHandler.ListRevisions)
	}

	actionsGroup := apiV1.Group("/actions", authenticated)
	{
		actionsGroup.PUT("/:id", r.ActionItemHandler.UpdateActionItem)
		actionsGroup.DELETE("/:id", r.ActionItemHandler.DeleteActionItem)
	}

	revisionsGroup := apiV1.Group("/revisions", authenticated)
	{
		revisionsGroup.POST("", r.RevisionHandler.CreateRevision)
		revisionsGroup.POST("/", r.RevisionHandler.CreateRevision)
		revisionsGroup.GET("/feedback/:feedback_id", r.RevisionHandler.ListByFeedback)
		revisionsGroup.GET("/feedback/:feedback_id/revisions", r.RevisionHandler.ListByFeedback)
		revisionsGroup.GET("/:id", r.RevisionHandler.GetRevision)
		revisionsGroup.PUT("/:id", r.RevisionHandler.UpdateRevision)
	}

	notificationsGroup := apiV1.Group("/notifications", authenticated)
	{
		notificationsGroup.GET("", r.NotificationHandler.ListNotifications)
		notificationsGroup.GET("/", r.NotificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.NotificationHandler.UnreadCount)
		notificationsGroup.PUT("/read-all", r.NotificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", r.NotificationHandler.MarkRead)
	}
}
