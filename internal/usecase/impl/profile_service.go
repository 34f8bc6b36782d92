package impl

import (
	"context"
	"log/slog"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return withoutHash(user), nil
}

// UpdateProfile applies the provided fields. A new password is strength-checked and hashed
// before the transaction opens.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	requestLogger(ctx, srv.logger).Info("Updating user profile", slog.Any("userID", userID))

	var newHash string
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, err
		}

		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		newHash = hashed
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}

		if input.Email != nil {
			email := trimEmail(*input.Email)
			if email != found.Email {
				other, err := userRepo.FindByEmail(ctx, email)
				if err == nil && other.ID != found.ID {
					return errors.WithStack(domainerrors.ErrEmailTaken)
				}
				if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(err, "failed to look up email")
				}
				found.Email = email
			}
		}
		if input.FullName != nil {
			found.FullName = *input.FullName
		}
		if newHash != "" {
			found.HashedPassword = newHash
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return withoutHash(user), nil
}

// DeleteAccount removes the user and, through cascades, everything they own.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	requestLogger(ctx, srv.logger).Info("Deleting user account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// GetStats counts the caller's projects, feedback and revisions.
func (srv *profileService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var stats *entity.UserStats

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().Stats(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count user resources")
		}
		stats = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user stats")
	}

	return stats, nil
}
