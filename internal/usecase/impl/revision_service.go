package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"freelancer/config"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"
	"freelancer/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// revisionService implements the RevisionUsecase interface.
type revisionService struct {
	txManager         repository.TransactionManager
	sanitizer         service.TextSanitizer
	clock             service.Clock
	metrics           service.NotificationMetrics
	maxUploadBytes    int64
	allowedExtensions []string
	logger            *slog.Logger
}

// RevisionServiceParams holds dependencies for revisionService, injected by Fx.
type RevisionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sanitizer service.TextSanitizer
	Clock     service.Clock
	Metrics   service.NotificationMetrics `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRevisionService is the constructor for revisionService.
func NewRevisionService(params RevisionServiceParams) usecase.RevisionUsecase {
	var metrics service.NotificationMetrics = noopMetrics{}
	if params.Metrics != nil {
		metrics = params.Metrics
	}
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock
	}

	srv := &revisionService{
		txManager: params.TxManager,
		sanitizer: params.Sanitizer,
		clock:     clock,
		metrics:   metrics,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Upload != nil {
		srv.maxUploadBytes = util.MegabytesToBytes(params.Config.Upload.MaxSizeMB)
		srv.allowedExtensions = params.Config.Upload.AllowedExtensions
	}

	return srv
}

// validateFile checks the extension allow-list and the size ceiling.
func (srv *revisionService) validateFile(file *entity.RevisionFile) error {
	if file == nil {
		return nil
	}
	if !util.HasAllowedExtension(file.Name, srv.allowedExtensions) {
		return domainerrors.ErrUnsupportedFileType.WithDetails(
			fmt.Sprintf("allowed extensions: %s", strings.Join(srv.allowedExtensions, ", ")))
	}
	if srv.maxUploadBytes > 0 && file.Size > srv.maxUploadBytes {
		return domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", util.FormatBytes(file.Size), util.FormatBytes(srv.maxUploadBytes)))
	}

	return nil
}

// Create numbers the revision max(version)+1 while holding a lock on the parent feedback row.
func (srv *revisionService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateRevisionInput) (*entity.Revision, error) {
	if err := srv.validateFile(input.File); err != nil {
		return nil, err
	}

	revision := &entity.Revision{
		FeedbackID: input.FeedbackID,
		Status:     entity.RevisionStatusPending,
		Notes:      srv.sanitizer.Sanitize(input.Notes),
	}
	if input.File != nil {
		revision.FileName = input.File.Name
		revision.FileType = input.File.ContentType
		revision.FileSize = input.File.Size
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.FeedbackRepo().LockForUser(ctx, input.FeedbackID, userID); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to lock feedback")
		}

		revisionRepo := repoFactory.RevisionRepo()
		latest, err := revisionRepo.LatestVersion(ctx, input.FeedbackID)
		if err != nil {
			return errors.Wrap(err, "failed to read latest revision version")
		}
		revision.Version = latest + 1

		if err := revisionRepo.Create(ctx, revision); err != nil {
			if errors.Is(err, repository.ErrRevisionVersionTaken) {
				return errors.WithStack(domainerrors.ErrRevisionVersionConflict)
			}

			return errors.Wrap(err, "failed to create revision")
		}

		if err := repoFactory.NotificationRepo().Create(ctx, revisionUploadedNotification(userID, revision)); err != nil {
			return errors.Wrap(err, "failed to create revision notification")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordNotificationCreated()
	requestLogger(ctx, srv.logger).Info("Revision uploaded",
		slog.Any("revisionID", revision.ID),
		slog.Any("feedbackID", revision.FeedbackID),
		slog.Int("version", revision.Version),
	)

	return revision, nil
}

func (srv *revisionService) Get(ctx context.Context, userID, revisionID uuid.UUID) (*entity.Revision, error) {
	var revision *entity.Revision

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RevisionRepo().FindByIDForUser(ctx, revisionID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrRevisionNotFound, domainerrors.ErrRevisionNotFound, "failed to find revision")
		}
		revision = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return revision, nil
}

// ListByFeedback returns the revisions highest version first.
func (srv *revisionService) ListByFeedback(ctx context.Context, userID, feedbackID uuid.UUID) ([]*entity.Revision, error) {
	var revisions []*entity.Revision

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.FeedbackRepo().FindByIDForUser(ctx, feedbackID, userID); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to find feedback")
		}

		found, err := repoFactory.RevisionRepo().ListByFeedback(ctx, feedbackID)
		if err != nil {
			return errors.Wrap(err, "failed to list revisions")
		}
		revisions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return revisions, nil
}

// Update stamps approved_at and notifies the owner when the status first becomes approved.
func (srv *revisionService) Update(ctx context.Context, userID, revisionID uuid.UUID, input *usecase.UpdateRevisionInput) (*entity.Revision, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of pending, in_review, approved, rejected")
	}

	var revision *entity.Revision
	approved := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		revisionRepo := repoFactory.RevisionRepo()

		found, err := revisionRepo.FindByIDForUser(ctx, revisionID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrRevisionNotFound, domainerrors.ErrRevisionNotFound, "failed to find revision")
		}

		if input.Notes != nil {
			found.Notes = srv.sanitizer.Sanitize(*input.Notes)
		}
		if input.Status != nil {
			approved = *input.Status == entity.RevisionStatusApproved && found.Status != entity.RevisionStatusApproved
			found.Status = *input.Status
			if approved {
				approvedAt := srv.clock()
				found.ApprovedAt = &approvedAt
			}
		}

		if err := revisionRepo.Update(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrRevisionNotFound, domainerrors.ErrRevisionNotFound, "failed to update revision")
		}

		if approved {
			if err := repoFactory.NotificationRepo().Create(ctx, revisionApprovedNotification(userID, found)); err != nil {
				return errors.Wrap(err, "failed to create approval notification")
			}
		}
		revision = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if approved {
		srv.metrics.RecordNotificationCreated()
	}

	return revision, nil
}
