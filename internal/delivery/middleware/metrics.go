package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// HTTPMetrics receives one observation per served request.
type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle observes the request after the error handler has written the response,
// so failed requests are counted with their final status code.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
