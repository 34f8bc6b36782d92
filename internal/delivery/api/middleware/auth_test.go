package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "freelancer/internal/delivery/context"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	mockUsecase "freelancer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{IdentityUC: identityUC})
	identity := &entity.Identity{UserID: uuid.New(), Email: "alice@example.com", IsActive: true}

	identityUC.EXPECT().Resolve(mock.Anything, "Bearer access").Return(identity, nil)
	identityUC.EXPECT().Resolve(mock.Anything, "Basic abc").Return(nil, domainerrors.ErrMissingCredentials)

	e := newErrorEcho(nil)
	e.GET("/me", func(c echo.Context) error {
		got, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)

		return c.String(http.StatusOK, got.UserID.String())
	}, auth.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer access")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity.UserID.String(), rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestIdentity_MissingIsUnauthenticated(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := Identity(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}
