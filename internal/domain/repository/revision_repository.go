package repository

import (
	"context"
	"errors"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRevisionNotFound is returned when no revision with the id is reachable by the owner.
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrRevisionVersionTaken is returned when (feedback_id, version) already exists.
	ErrRevisionVersionTaken = errors.New("revision version already exists")
)

// RevisionRepository persists revisions. Ownership is resolved through the parent feedback.
type RevisionRepository interface {
	Create(ctx context.Context, revision *entity.Revision) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Revision, error)

	// ListByFeedback returns all revisions of the feedback, highest version first.
	ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]*entity.Revision, error)

	// LatestVersion returns the highest version recorded for the feedback, or 0.
	LatestVersion(ctx context.Context, feedbackID uuid.UUID) (int, error)
	Update(ctx context.Context, revision *entity.Revision) error
}
