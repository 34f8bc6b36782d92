package impl

import (
	"context"
	"testing"
	"time"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifications(t *testing.T, f *resourceFixture, count int) {
	t.Helper()

	project := f.createProject(t, f.owner, "Brand refresh")
	for range count {
		f.clock.Advance(time.Minute)
		f.createFeedback(t, f.owner, project.ID, "Another round of changes")
	}
}

func TestNotificationService_ListAndCount(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	seedNotifications(t, f, 3)

	all, err := f.notifications.List(ctx, f.owner, false, entity.Page{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[2].CreatedAt))

	count, err := f.notifications.UnreadCount(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = f.notifications.UnreadCount(ctx, f.stranger)
	require.NoError(t, err)
	assert.Zero(t, count)

	page, err := f.notifications.List(ctx, f.owner, false, entity.Page{Skip: 2, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestNotificationService_MarkRead(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	seedNotifications(t, f, 2)

	all, err := f.notifications.List(ctx, f.owner, false, entity.Page{Limit: 50})
	require.NoError(t, err)
	target := all[0]

	_, err = f.notifications.MarkRead(ctx, f.stranger, target.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	_, err = f.notifications.MarkRead(ctx, f.owner, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	firstReadAt := f.clock.Now()
	read, err := f.notifications.MarkRead(ctx, f.owner, target.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)
	assert.Equal(t, firstReadAt, *read.ReadAt)

	// Reading again keeps the original timestamp.
	f.clock.Advance(time.Hour)
	again, err := f.notifications.MarkRead(ctx, f.owner, target.ID)
	require.NoError(t, err)
	assert.Equal(t, firstReadAt, *again.ReadAt)

	unread, err := f.notifications.List(ctx, f.owner, true, entity.Page{Limit: 50})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.NotEqual(t, target.ID, unread[0].ID)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	f := newResourceFixture(t)
	ctx := context.Background()
	seedNotifications(t, f, 3)

	all, err := f.notifications.List(ctx, f.owner, false, entity.Page{Limit: 50})
	require.NoError(t, err)
	_, err = f.notifications.MarkRead(ctx, f.owner, all[0].ID)
	require.NoError(t, err)

	marked, err := f.notifications.MarkAllRead(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	marked, err = f.notifications.MarkAllRead(ctx, f.owner)
	require.NoError(t, err)
	assert.Zero(t, marked)

	count, err := f.notifications.UnreadCount(ctx, f.owner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

var _ usecase.NotificationUsecase = (*notificationService)(nil)
