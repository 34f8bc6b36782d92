package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"freelancer/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrPasswordStrength.WithDetails("must contain a digit")

	assert.True(t, errors.Is(err, ErrPasswordStrength))
	assert.False(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "must contain a digit", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("password mismatch")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "password mismatch")
}

func TestDatabaseExecuteError_UnwrapsDriverError(t *testing.T) {
	driverErr := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "failed to create project")

	assert.True(t, errors.Is(err, driverErr))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create project", err.Details())
}
