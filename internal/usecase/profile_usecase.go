package usecase

import (
	"context"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for account self-service.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
}

// UpdateProfileInput carries the optional fields of a profile update. Nil means unchanged.
type UpdateProfileInput struct {
	Email    *string
	FullName *string
	Password *string
}
