package usecase

import (
	"context"

	"freelancer/internal/domain/entity"
)

// IdentityUsecase resolves the caller of a protected request.
type IdentityUsecase interface {
	// Resolve turns an Authorization header value into the active user it names.
	Resolve(ctx context.Context, authorizationHeader string) (*entity.Identity, error)
}
