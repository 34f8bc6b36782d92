package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionItemService_CreateAndList(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo, darker blue")

	low, err := f.actionItems.Create(ctx, f.owner, feedback.ID, &usecase.CreateActionItemInput{Description: "Darken blue", Priority: 0})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	urgent, err := f.actionItems.Create(ctx, f.owner, feedback.ID, &usecase.CreateActionItemInput{Description: "<b>Resize</b> logo", Priority: 3})
	require.NoError(t, err)
	assert.Equal(t, "Resize logo", urgent.Description)
	assert.False(t, urgent.IsCompleted)
	assert.Nil(t, urgent.CompletedAt)

	items, err := f.actionItems.ListByFeedback(ctx, f.owner, feedback.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, urgent.ID, items[0].ID)
	assert.Equal(t, low.ID, items[1].ID)

	_, err = f.actionItems.ListByFeedback(ctx, f.stranger, feedback.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)

	_, err = f.actionItems.Create(ctx, f.stranger, feedback.ID, &usecase.CreateActionItemInput{Description: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)
}

func TestActionItemService_CreateValidation(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")

	tests := []struct {
		name  string
		input usecase.CreateActionItemInput
	}{
		{name: "blank description", input: usecase.CreateActionItemInput{Description: " <i></i> "}},
		{name: "priority below range", input: usecase.CreateActionItemInput{Description: "x", Priority: -1}},
		{name: "priority above range", input: usecase.CreateActionItemInput{Description: "x", Priority: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.actionItems.Create(ctx, f.owner, feedback.ID, &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestActionItemService_CompletionTimestamp(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")
	item, err := f.actionItems.Create(ctx, f.owner, feedback.ID, &usecase.CreateActionItemInput{Description: "Resize logo", Priority: 2})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	completedAt := f.clock.Now()
	done, err := f.actionItems.Update(ctx, f.owner, item.ID, &usecase.UpdateActionItemInput{IsCompleted: ptr(true)})
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, completedAt, *done.CompletedAt)

	// Completing again keeps the first timestamp.
	f.clock.Advance(time.Hour)
	again, err := f.actionItems.Update(ctx, f.owner, item.ID, &usecase.UpdateActionItemInput{IsCompleted: ptr(true), Priority: ptr(1)})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, completedAt, *again.CompletedAt)
	assert.Equal(t, 1, again.Priority)

	reopened, err := f.actionItems.Update(ctx, f.owner, item.ID, &usecase.UpdateActionItemInput{IsCompleted: ptr(false)})
	require.NoError(t, err)
	assert.False(t, reopened.IsCompleted)
	assert.Nil(t, reopened.CompletedAt)

	_, err = f.actionItems.Update(ctx, f.owner, item.ID, &usecase.UpdateActionItemInput{Priority: ptr(9)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.actionItems.Update(ctx, f.stranger, item.ID, &usecase.UpdateActionItemInput{IsCompleted: ptr(true)})
	assert.ErrorIs(t, err, domainerrors.ErrActionItemNotFound)
}

func TestActionItemService_Delete(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	project := f.createProject(t, f.owner, "Brand refresh")
	feedback := f.createFeedback(t, f.owner, project.ID, "Bigger logo")
	item, err := f.actionItems.Create(ctx, f.owner, feedback.ID, &usecase.CreateActionItemInput{Description: "Resize logo"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.actionItems.Delete(ctx, f.stranger, item.ID), domainerrors.ErrActionItemNotFound)
	require.NoError(t, f.actionItems.Delete(ctx, f.owner, item.ID))
	assert.ErrorIs(t, f.actionItems.Delete(ctx, f.owner, item.ID), domainerrors.ErrActionItemNotFound)
}
