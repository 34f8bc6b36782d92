package handler

import (
	"net/http"
	"testing"

	apimiddleware "freelancer/internal/delivery/api/middleware"
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

func newAuthRoutes(t *testing.T) (*mockUsecase.MockUserUsecase, *mockUsecase.MockIdentityUsecase, *echo.Echo) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	auth := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{IdentityUC: identityUC})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)
	e.GET("/auth/me", h.Me, auth.Authenticate)
	e.POST("/auth/logout", h.Logout, auth.Authenticate)

	return userUC, identityUC, e
}

func TestAuthHandler_Register(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)

	created := &entity.User{ID: uuid.New(), Email: "alice@example.com", HashedPassword: "$2a$04$secret", IsActive: true, CreatedAt: testNow, UpdatedAt: testNow}
	userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
		FullName: "Alice",
	}).Return(&usecase.RegisterOutput{User: created}, nil)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"email":     "alice@example.com",
		"password":  "Passw0rd!",
		"full_name": "Alice",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "hashed_password")

	user := decodeData[UserResponse](t, rec)
	assert.Equal(t, created.ID, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
}

func TestAuthHandler_RegisterRejectsInvalidBody(t *testing.T) {
	_, _, e := newAuthRoutes(t)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "short",
	}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	fields, ok := env.Error.Details.([]any)
	require.True(t, ok, "details should list the rejected fields")
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"email", "password"}, names)

	rec = serve(e, jsonRequest(t, http.MethodPost, "/auth/register", "{not json"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAuthHandler_RegisterConflict(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)
	userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"email":    "alice@example.com",
		"password": "Passw0rd!",
	}))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_TAKEN", decode(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)
	userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "Passw0rd!"}).
		Return(&usecase.LoginOutput{
			Tokens: &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: entity.TokenTypeBearer},
			User:   &entity.User{ID: uuid.New()},
		}, nil)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Passw0rd!",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, decodeData[TokenResponse](t, rec))
}

func TestAuthHandler_LoginFailureIsBearerChallenge(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("user lookup missed"))

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_MalformedHashHidesDetails(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrMalformedStoredHash.WithDetails("bcrypt: hashedSecret too short"))

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Passw0rd!",
	}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "MALFORMED_STORED_HASH", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "bcrypt")
}

func TestAuthHandler_Refresh(t *testing.T) {
	userUC, _, e := newAuthRoutes(t)
	userUC.EXPECT().Refresh(mock.Anything, "refresh-token").
		Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2", TokenType: entity.TokenTypeBearer}, nil)
	userUC.EXPECT().Refresh(mock.Anything, "access-token").Return(nil, domainerrors.ErrWrongTokenType)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "refresh-token"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a2", decodeData[TokenResponse](t, rec).AccessToken)

	rec = serve(e, jsonRequest(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "access-token"}))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "WRONG_TOKEN_TYPE", decode(t, rec).Error.Code)

	rec = serve(e, jsonRequest(t, http.MethodPost, "/auth/refresh", map[string]string{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	userUC, identityUC, e := newAuthRoutes(t)
	identity := newIdentity()

	identityUC.EXPECT().Resolve(mock.Anything, "Bearer good").Return(identity, nil)
	identityUC.EXPECT().Resolve(mock.Anything, "").Return(nil, domainerrors.ErrMissingCredentials)
	identityUC.EXPECT().Resolve(mock.Anything, "Bearer disabled").Return(nil, domainerrors.ErrInactiveUser)
	userUC.EXPECT().Me(mock.Anything, identity).Return(identity.User, nil)
	userUC.EXPECT().Logout(mock.Anything, identity).Return(usecase.LogoutMessage)

	req := jsonRequest(t, http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity.UserID, decodeData[UserResponse](t, rec).ID)

	req = jsonRequest(t, http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.LogoutMessage, decodeData[MessageResponse](t, rec).Message)

	rec = serve(e, jsonRequest(t, http.MethodGet, "/auth/me", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "MISSING_CREDENTIALS", decode(t, rec).Error.Code)

	req = jsonRequest(t, http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer disabled")
	rec = serve(e, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INACTIVE_USER", decode(t, rec).Error.Code)
}
