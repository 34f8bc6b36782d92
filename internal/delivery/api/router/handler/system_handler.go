package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"freelancer/config"
	"freelancer/internal/delivery/api/response"
	deliverycontext "freelancer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dbPingTimeout = 2 * time.Second

// DatabaseChecker is implemented by the persistence layer.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	Config   *config.Config
	Database DatabaseChecker
	Logger   *slog.Logger
}

// SystemHandler serves the service banner and health probes.
type SystemHandler struct {
	cfg    *config.Config
	db     DatabaseChecker
	logger *slog.Logger
}

func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		cfg:    params.Config,
		db:     params.Database,
		logger: params.Logger,
	}
}

// Root describes the service.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"name":        h.cfg.Env.ServiceName,
		"version":     h.cfg.Env.Version,
		"description": "Turns client feedback into action items and tracked revisions",
		"health":      "/health",
	})
}

// Health is the liveness probe.
func (h *SystemHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": h.cfg.Env.Env,
		"version":     h.cfg.Env.Version,
	})
}

// DatabaseHealth is the readiness probe. It answers 503 when the database is unreachable.
func (h *SystemHandler) DatabaseHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Database health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is not reachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
