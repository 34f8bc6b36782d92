package impl

import (
	"context"
	"log/slog"
	"strings"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// identityService implements the IdentityUsecase interface. It keeps no state between calls.
type identityService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	metrics      service.AuthMetrics
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	var metrics service.AuthMetrics = noopMetrics{}
	if params.Metrics != nil {
		metrics = params.Metrics
	}

	return &identityService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

// Resolve checks, in order: header shape, signature and expiry, token type, subject,
// account existence and account state. Each step fails with its own error.
func (srv *identityService) Resolve(ctx context.Context, authorizationHeader string) (*entity.Identity, error) {
	token, ok := parseBearer(authorizationHeader)
	if !ok {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeMissingCredentials)

		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	claims, err := srv.tokenService.Decode(token)
	if err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeInvalidToken)
		requestLogger(ctx, srv.logger).Warn("Rejected bearer token", slog.Any("error", err))

		return nil, err
	}

	if err := srv.tokenService.VerifyType(claims, entity.TokenTypeAccess); err != nil {
		srv.metrics.RecordAuthOutcome(service.AuthOutcomeWrongTokenType)
		requestLogger(ctx, srv.logger).Warn("Bearer token is not an access token", slog.String("type", string(claims.Type)))

		return nil, err
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
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user for token")
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
		requestLogger(ctx, srv.logger).Warn("Token presented for inactive user", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInactiveUser)
	}

	return &entity.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		User:     user,
	}, nil
}

// parseBearer extracts the token from "Bearer <token>". The scheme is case-insensitive.
func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
