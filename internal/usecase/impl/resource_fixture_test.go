package impl

import (
	"context"
	"testing"

	"freelancer/internal/domain/entity"
	"freelancer/internal/infra/sanitize"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// resourceFixture wires the resource services to one in-memory store with two seeded
// accounts: owner, who creates things, and stranger, who must never see them.
type resourceFixture struct {
	store *memStore
	clock *testClock

	owner    uuid.UUID
	stranger uuid.UUID

	profiles      usecase.ProfileUsecase
	projects      usecase.ProjectUsecase
	feedback      usecase.FeedbackUsecase
	actionItems   usecase.ActionItemUsecase
	revisions     usecase.RevisionUsecase
	notifications usecase.NotificationUsecase
}

func newResourceFixture(t *testing.T) *resourceFixture {
	t.Helper()

	cfg := newTestConfig()
	clock := newTestClock()
	store := newMemStore(clock.Now)
	sanitizer := sanitize.NewTextSanitizer()
	logger := newDiscardLogger()

	owner := entity.User{ID: uuid.New(), Email: "owner@example.com", IsActive: true}
	stranger := entity.User{ID: uuid.New(), Email: "stranger@example.com", IsActive: true}
	store.putUser(owner)
	store.putUser(stranger)

	return &resourceFixture{
		store:    store,
		clock:    clock,
		owner:    owner.ID,
		stranger: stranger.ID,
		profiles: NewProfileService(store, newTestHasher(t, cfg), logger),
		projects: NewProjectService(ProjectServiceParams{
			TxManager: store,
			Sanitizer: sanitizer,
			Logger:    logger,
		}),
		feedback: NewFeedbackService(FeedbackServiceParams{
			TxManager: store,
			Sanitizer: sanitizer,
			Config:    cfg,
			Logger:    logger,
		}),
		actionItems: NewActionItemService(ActionItemServiceParams{
			TxManager: store,
			Sanitizer: sanitizer,
			Clock:     clock.Now,
			Logger:    logger,
		}),
		revisions: NewRevisionService(RevisionServiceParams{
			TxManager: store,
			Sanitizer: sanitizer,
			Clock:     clock.Now,
			Config:    cfg,
			Logger:    logger,
		}),
		notifications: NewNotificationService(store, clock.Now, logger),
	}
}

func (f *resourceFixture) createProject(t *testing.T, userID uuid.UUID, name string) *entity.Project {
	t.Helper()

	project, err := f.projects.Create(context.Background(), userID, &usecase.CreateProjectInput{Name: name})
	require.NoError(t, err)

	return project
}

func (f *resourceFixture) createFeedback(t *testing.T, userID, projectID uuid.UUID, text string) *entity.Feedback {
	t.Helper()

	feedback, err := f.feedback.Create(context.Background(), userID, &usecase.CreateFeedbackInput{
		ProjectID: projectID,
		RawText:   text,
	})
	require.NoError(t, err)

	return feedback
}
