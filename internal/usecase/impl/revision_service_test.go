package impl

import (
	"context"
	"testing"
	"time"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	mockRepo "freelancer/internal/mocks/repository"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRevisionService_VersionsIncrementPerFeedback(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	first := f.createFeedback(t, f.owner, project.ID, "Bigger logo")
	second := f.createFeedback(t, f.owner, project.ID, "Darker blue")

	for want := 1; want <= 3; want++ {
		rev, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{
			FeedbackID: first.ID,
			Notes:      "<p>round</p>",
			File:       &entity.RevisionFile{Name: "logo.PNG", ContentType: "image/png", Size: 2048},
		})
		require.NoError(t, err)
		assert.Equal(t, want, rev.Version)
		assert.Equal(t, entity.RevisionStatusPending, rev.Status)
		assert.Equal(t, "round", rev.Notes)
		assert.Equal(t, "logo.PNG", rev.FileName)
		assert.Equal(t, int64(2048), rev.FileSize)
	}

	other, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{FeedbackID: second.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, other.Version)

	listed, err := f.revisions.ListByFeedback(ctx, f.owner, first.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 3, listed[0].Version)
	assert.Equal(t, 1, listed[2].Version)

	var uploaded int
	for _, n := range f.store.notificationsFor(f.owner) {
		if n.Type == entity.NotificationRevisionUploaded {
			uploaded++
		}
	}
	assert.Equal(t, 4, uploaded)
}

func TestRevisionService_FileValidation(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")

	_, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{
		FeedbackID: feedback.ID,
		File:       &entity.RevisionFile{Name: "payload.exe", Size: 10},
	})
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), ".png")

	_, err = f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{
		FeedbackID: feedback.ID,
		File:       &entity.RevisionFile{Name: "no-extension", Size: 10},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)

	_, err = f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{
		FeedbackID: feedback.ID,
		File:       &entity.RevisionFile{Name: "huge.psd", Size: 50*1024*1024 + 1},
	})
	require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "50.0 MB")

	rev, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{
		FeedbackID: feedback.ID,
		File:       &entity.RevisionFile{Name: "exact.psd", Size: 50 * 1024 * 1024},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rev.Version)
}

func TestRevisionService_ForeignFeedbackIsNotFound(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")
	rev, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{FeedbackID: feedback.ID})
	require.NoError(t, err)

	_, err = f.revisions.Create(ctx, f.stranger, &usecase.CreateRevisionInput{FeedbackID: feedback.ID})
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)

	_, err = f.revisions.Get(ctx, f.stranger, rev.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRevisionNotFound)

	_, err = f.revisions.ListByFeedback(ctx, f.stranger, feedback.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)

	got, err := f.revisions.Get(ctx, f.owner, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, rev.ID, got.ID)
}

func TestRevisionService_ApprovalStampsAndNotifiesOnce(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")
	rev, err := f.revisions.Create(ctx, f.owner, &usecase.CreateRevisionInput{FeedbackID: feedback.ID})
	require.NoError(t, err)

	inReview := entity.RevisionStatusInReview
	reviewed, err := f.revisions.Update(ctx, f.owner, rev.ID, &usecase.UpdateRevisionInput{Status: &inReview, Notes: ptr("looks close")})
	require.NoError(t, err)
	assert.Nil(t, reviewed.ApprovedAt)
	assert.Equal(t, "looks close", reviewed.Notes)

	f.clock.Advance(time.Hour)
	approvedAt := f.clock.Now()
	approved := entity.RevisionStatusApproved
	done, err := f.revisions.Update(ctx, f.owner, rev.ID, &usecase.UpdateRevisionInput{Status: &approved})
	require.NoError(t, err)
	require.NotNil(t, done.ApprovedAt)
	assert.Equal(t, approvedAt, *done.ApprovedAt)

	f.clock.Advance(time.Hour)
	again, err := f.revisions.Update(ctx, f.owner, rev.ID, &usecase.UpdateRevisionInput{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, approvedAt, *again.ApprovedAt)

	var approvals int
	for _, n := range f.store.notificationsFor(f.owner) {
		if n.Type == entity.NotificationRevisionApproved {
			approvals++
			assert.Equal(t, rev.ID.String(), n.Metadata["revision_id"])
		}
	}
	assert.Equal(t, 1, approvals)

	bogus := entity.RevisionStatus("shipped")
	_, err = f.revisions.Update(ctx, f.owner, rev.ID, &usecase.UpdateRevisionInput{Status: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.revisions.Update(ctx, f.stranger, rev.ID, &usecase.UpdateRevisionInput{Status: &approved})
	assert.ErrorIs(t, err, domainerrors.ErrRevisionNotFound)
}

func TestRevisionService_ConcurrentVersionIsConflict(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	revisionRepo := mockRepo.NewMockRevisionRepository(t)

	srv := NewRevisionService(RevisionServiceParams{
		TxManager: txManager,
		Sanitizer: noopSanitizer{},
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	userID, feedbackID := uuid.New(), uuid.New()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
	repoFactory.EXPECT().FeedbackRepo().Return(feedbackRepo)
	repoFactory.EXPECT().RevisionRepo().Return(revisionRepo)
	feedbackRepo.EXPECT().LockForUser(mock.Anything, feedbackID, userID).Return(&entity.Feedback{ID: feedbackID, UserID: userID}, nil)
	revisionRepo.EXPECT().LatestVersion(mock.Anything, feedbackID).Return(4, nil)
	revisionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rev *entity.Revision) bool {
		return rev.Version == 5 && rev.FeedbackID == feedbackID
	})).Return(repository.ErrRevisionVersionTaken)

	_, err := srv.Create(context.Background(), userID, &usecase.CreateRevisionInput{FeedbackID: feedbackID})
	assert.ErrorIs(t, err, domainerrors.ErrRevisionVersionConflict)
}

type noopSanitizer struct{}

func (noopSanitizer) Sanitize(text string) string { return text }
