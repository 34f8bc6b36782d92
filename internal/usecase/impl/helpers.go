// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "freelancer/internal/delivery/context"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"

	"github.com/google/uuid"
)

// requestLogger returns a request-scoped logger if available, otherwise the fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// translateNotFound maps a repository sentinel onto the matching domain error.
func translateNotFound(err, sentinel error, domainErr *domainerrors.BaseError, action string) error {
	if errors.Is(err, sentinel) {
		return errors.WithStack(domainErr)
	}

	return errors.Wrap(err, action)
}

// subjectID parses the sub claim. A missing or malformed subject is an invalid token.
func subjectID(claims *service.Claims) (uuid.UUID, error) {
	if claims == nil || claims.Subject == "" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "token has no subject")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject is not a user id")
	}

	return id, nil
}

// trimEmail strips surrounding whitespace. Case is kept as supplied and compared exactly.
func trimEmail(email string) string {
	return strings.TrimSpace(email)
}

type noopMetrics struct{}

func (noopMetrics) RecordAuthOutcome(service.AuthOutcome) {}

func (noopMetrics) RecordNotificationCreated() {}
