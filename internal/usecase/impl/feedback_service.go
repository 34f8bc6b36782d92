package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"freelancer/config"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	txManager repository.TransactionManager
	sanitizer service.TextSanitizer
	metrics   service.NotificationMetrics
	maxLength int
	logger    *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sanitizer service.TextSanitizer
	Metrics   service.NotificationMetrics `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	var metrics service.NotificationMetrics = noopMetrics{}
	if params.Metrics != nil {
		metrics = params.Metrics
	}

	maxLength := 0
	if params.Config != nil && params.Config.Feedback != nil {
		maxLength = params.Config.Feedback.MaxLength
	}

	return &feedbackService{
		txManager: params.TxManager,
		sanitizer: params.Sanitizer,
		metrics:   metrics,
		maxLength: maxLength,
		logger:    params.Logger,
	}
}

func (srv *feedbackService) cleanText(raw string) (string, error) {
	text := srv.sanitizer.Sanitize(raw)
	if strings.TrimSpace(text) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("raw_text is required")
	}
	if srv.maxLength > 0 && utf8.RuneCountInString(text) > srv.maxLength {
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("raw_text must be at most %d characters", srv.maxLength))
	}

	return text, nil
}

// Create records feedback on an owned project and notifies the owner in the same transaction.
func (srv *feedbackService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	text, err := srv.cleanText(input.RawText)
	if err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		UserID:    userID,
		ProjectID: input.ProjectID,
		RawText:   text,
		Status:    entity.FeedbackStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		project, err := repoFactory.ProjectRepo().FindByIDForUser(ctx, input.ProjectID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
		}

		if err := repoFactory.FeedbackRepo().Create(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to create feedback")
		}

		if err := repoFactory.NotificationRepo().Create(ctx, feedbackReceivedNotification(userID, project, feedback)); err != nil {
			return errors.Wrap(err, "failed to create feedback notification")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordNotificationCreated()
	requestLogger(ctx, srv.logger).Info("Feedback recorded", slog.Any("feedbackID", feedback.ID), slog.Any("projectID", feedback.ProjectID))

	return feedback, nil
}

func (srv *feedbackService) Get(ctx context.Context, userID, feedbackID uuid.UUID) (*entity.Feedback, error) {
	var feedback *entity.Feedback

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FeedbackRepo().FindByIDForUser(ctx, feedbackID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to find feedback")
		}
		feedback = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListByProject returns 404 for a project the caller does not own, rather than an empty list.
func (srv *feedbackService) ListByProject(ctx context.Context, userID, projectID uuid.UUID, page entity.Page) ([]*entity.Feedback, error) {
	var feedback []*entity.Feedback

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProjectRepo().FindByIDForUser(ctx, projectID, userID); err != nil {
			return translateNotFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
		}

		found, err := repoFactory.FeedbackRepo().ListByProject(ctx, projectID, userID, page)
		if err != nil {
			return errors.Wrap(err, "failed to list feedback")
		}
		feedback = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

func (srv *feedbackService) Update(ctx context.Context, userID, feedbackID uuid.UUID, input *usecase.UpdateFeedbackInput) (*entity.Feedback, error) {
	var text string
	if input.RawText != nil {
		cleaned, err := srv.cleanText(*input.RawText)
		if err != nil {
			return nil, err
		}
		text = cleaned
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of pending, processing, processed, failed")
	}

	var feedback *entity.Feedback
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		found, err := feedbackRepo.FindByIDForUser(ctx, feedbackID, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to find feedback")
		}

		if input.RawText != nil {
			found.RawText = text
		}
		if input.Status != nil {
			found.Status = *input.Status
		}

		if err := feedbackRepo.Update(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to update feedback")
		}
		feedback = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

func (srv *feedbackService) Delete(ctx context.Context, userID, feedbackID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FeedbackRepo().Delete(ctx, feedbackID, userID); err != nil {
			return translateNotFound(err, repository.ErrFeedbackNotFound, domainerrors.ErrFeedbackNotFound, "failed to delete feedback")
		}

		return nil
	})
}
