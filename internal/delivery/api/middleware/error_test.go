package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelancer/internal/delivery/api/validator"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newErrorEcho(handlerErr error) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.GET("/fail", func(echo.Context) error { return handlerErr })

	return e
}

func renderError(t *testing.T, handlerErr error, path string) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	newErrorEcho(handlerErr).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func TestErrorMiddleware_AppErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "limit must be between 1 and 100",
		},
		{
			name:       "unauthorized hides details",
			err:        domainerrors.ErrInvalidToken.WithDetails("token is expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrInactiveUser.WithDetails("user deactivated"),
			wantStatus: http.StatusForbidden,
			wantCode:   "INACTIVE_USER",
		},
		{
			name:       "server error hides details",
			err:        errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"), "commit"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
		},
		{
			name:       "rate limited",
			err:        domainerrors.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RATE_LIMITED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, tt.err, "/fail")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestErrorMiddleware_ValidationErrorListsFields(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
	}
	err := validator.New().Validate(&request{})
	require.Error(t, err)

	rec, body := renderError(t, err, "/fail")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, []any{map[string]any{"field": "name", "message": "is required"}}, body.Error.Details)
}

func TestErrorMiddleware_EchoAndUnknownErrors(t *testing.T) {
	rec, body := renderError(t, nil, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	rec, body = renderError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge), "/fail")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "REQUEST_TOO_LARGE", body.Error.Code)

	rec, body = renderError(t, errors.New("pq: relation does not exist"), "/fail")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}
