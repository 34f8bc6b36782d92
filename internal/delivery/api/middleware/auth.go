package middleware

import (
	deliverycontext "freelancer/internal/delivery/context"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// AuthMiddleware resolves the bearer token of protected routes into an identity.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{identityUC: params.IdentityUC}
}

// Authenticate rejects the request unless the Authorization header names an active user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.identityUC.Resolve(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Identity returns the caller stored by Authenticate. Handlers behind Authenticate
// always have one, a missing value means the route was registered without it.
func Identity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	return identity, nil
}
