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

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	metrics      service.AuthMetrics
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var metrics service.AuthMetrics = noopMetrics{}
	if params.Metrics != nil {
		metrics = params.Metrics
	}
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock
	}

	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        clock,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Register creates an active, unverified account. The password is hashed before any write.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := trimEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, err
	}

	// Duplicate emails are rejected before hashing.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrEmailTaken)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to look up email")
	})
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, err
	}

	newUser := &entity.User{
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       input.FullName,
		IsActive:       true,
		IsVerified:     false,
	}

	// The unique index on users.email decides concurrent registrations.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.metrics.RecordAuthOutcome(service.AuthOutcomeRegistered)
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: withoutHash(newUser)}, nil
}

// Login verifies email and password. Unknown email and wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := trimEmail(input.Email)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.RecordAuthOutcome(service.AuthOutcomeLoginFailed)
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	matched, err := srv.hasher.Check(input.Password, user.HashedPassword)
	if err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeMalformedHash)
		srv.log(ctx).Error("Stored password hash is malformed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}
	if !matched {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeLoginFailed)
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if !user.IsActive {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeInactiveUser)
		srv.log(ctx).Warn("Login attempt for inactive user", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInactiveUser)
	}

	loginAt := srv.clock()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().UpdateLastLogin(ctx, user.ID, loginAt)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}
	user.LastLogin = &loginAt

	tokens, err := srv.tokenService.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.metrics.RecordAuthOutcome(service.AuthOutcomeLoginSuccess)
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Tokens: tokens, User: withoutHash(user)}, nil
}

// Refresh issues a fresh pair for a valid refresh token of an active user.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.Decode(refreshToken)
	if err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeInvalidToken)
		srv.log(ctx).Warn("Rejected refresh token", slog.Any("error", err))

		return nil, err
	}

	if err := srv.tokenService.VerifyType(claims, entity.TokenTypeRefresh); err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeWrongTokenType)
		srv.log(ctx).Warn("Refresh attempted with a non-refresh token", slog.String("type", string(claims.Type)))

		// Matches both ErrWrongTokenType and ErrInvalidToken.
		return nil, errors.Join(err, domainerrors.ErrInvalidToken)
	}

	userID, err := subjectID(claims)
	if err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeInvalidToken)

		return nil, err
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user for refresh")
		}
		user = found

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.metrics.RecordAuthOutcome(service.AuthOutcomeUserNotFound)
		}

		return nil, err
	}

	if !user.IsActive {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeInactiveUser)

		return nil, errors.WithStack(domainerrors.ErrInactiveUser)
	}

	tokens, err := srv.tokenService.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.metrics.RecordAuthOutcome(service.AuthOutcomeRefreshed)

	return tokens, nil
}

// Me returns the account the identity was resolved against.
func (srv *userService) Me(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}
	if identity.User != nil {
		return withoutHash(identity.User), nil
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, identity.UserID)
		if err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return withoutHash(user), nil
}

// Logout has nothing to revoke.
func (srv *userService) Logout(ctx context.Context, identity *entity.Identity) string {
	if identity != nil {
		srv.log(ctx).Debug("User logged out", slog.Any("userID", identity.UserID))
	}

	return usecase.LogoutMessage
}

// withoutHash returns a copy of the user safe to hand to the delivery layer.
func withoutHash(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	clone := *user
	clone.HashedPassword = ""

	return &clone
}
