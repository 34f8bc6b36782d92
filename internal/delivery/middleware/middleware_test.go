package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"freelancer/config"
	deliverycontext "freelancer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingMetrics) RecordHTTPRequest(method, route string, statusCode int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{method: method, route: route, status: statusCode})
}

func TestMetricsMiddleware_RecordsRouteTemplateAndFinalStatus(t *testing.T) {
	metrics := &recordingMetrics{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(metrics).Handle)
	e.GET("/projects/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound)
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/projects/1", "/projects/missing", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, metrics.obs, 3)
	assert.Equal(t, observation{method: http.MethodGet, route: "/projects/:id", status: http.StatusOK}, metrics.obs[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "/projects/:id", status: http.StatusNotFound}, metrics.obs[1])
	assert.Equal(t, http.StatusNotFound, metrics.obs[2].status)
	assert.NotEqual(t, "/nowhere", metrics.obs[2].route, "raw paths must not become label values")
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).InfoContext(ctx, "handled")

		return c.String(http.StatusOK, deliverycontext.RequestIDFromContext(ctx))
	})

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "client id is reused", incoming: "req-123", reused: true},
		{name: "missing id is generated"},
		{name: "id with spaces is replaced", incoming: "two words"},
		{name: "overlong id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String())
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
		})
	}
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/boom", func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom?token=secret", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"status":502`)
	assert.Contains(t, out, `"route":"/boom"`)
	assert.NotContains(t, out, "secret")
}
