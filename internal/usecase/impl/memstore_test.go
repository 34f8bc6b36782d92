package impl

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/errors"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the postgres repositories. Execute runs the
// callback under a single lock and restores the previous state when it fails.
type memStore struct {
	mu    sync.Mutex
	clock func() time.Time

	users         map[uuid.UUID]entity.User
	projects      map[uuid.UUID]entity.Project
	feedback      map[uuid.UUID]entity.Feedback
	revisions     map[uuid.UUID]entity.Revision
	actionItems   map[uuid.UUID]entity.ActionItem
	notifications map[uuid.UUID]entity.Notification

	// Injected failures, keyed by operation.
	failures map[string]error
}

func newMemStore(clock func() time.Time) *memStore {
	return &memStore{
		clock:         clock,
		users:         map[uuid.UUID]entity.User{},
		projects:      map[uuid.UUID]entity.Project{},
		feedback:      map[uuid.UUID]entity.Feedback{},
		revisions:     map[uuid.UUID]entity.Revision{},
		actionItems:   map[uuid.UUID]entity.ActionItem{},
		notifications: map[uuid.UUID]entity.Notification{},
		failures:      map[string]error{},
	}
}

type memSnapshot struct {
	users         map[uuid.UUID]entity.User
	projects      map[uuid.UUID]entity.Project
	feedback      map[uuid.UUID]entity.Feedback
	revisions     map[uuid.UUID]entity.Revision
	actionItems   map[uuid.UUID]entity.ActionItem
	notifications map[uuid.UUID]entity.Notification
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:         maps.Clone(s.users),
		projects:      maps.Clone(s.projects),
		feedback:      maps.Clone(s.feedback),
		revisions:     maps.Clone(s.revisions),
		actionItems:   maps.Clone(s.actionItems),
		notifications: maps.Clone(s.notifications),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.projects = snap.projects
	s.feedback = snap.feedback
	s.revisions = snap.revisions
	s.actionItems = snap.actionItems
	s.notifications = snap.notifications
}

func (s *memStore) failOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *memStore) failure(op string) error {
	return s.failures[op]
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) UserRepo() repository.UserRepository                 { return memUsers{s} }
func (s *memStore) ProjectRepo() repository.ProjectRepository           { return memProjects{s} }
func (s *memStore) FeedbackRepo() repository.FeedbackRepository         { return memFeedback{s} }
func (s *memStore) RevisionRepo() repository.RevisionRepository         { return memRevisions{s} }
func (s *memStore) ActionItemRepo() repository.ActionItemRepository     { return memActionItems{s} }
func (s *memStore) NotificationRepo() repository.NotificationRepository { return memNotifications{s} }

// Test accessors. They take the lock and return copies.

func (s *memStore) userByEmail(email string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}

	return entity.User{}, false
}

func (s *memStore) putUser(user entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *memStore) notificationsFor(userID uuid.UUID) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b entity.Notification) int { return a.CreatedAt.Compare(b.CreatedAt) })

	return out
}

func (s *memStore) countFeedback() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.feedback)
}

func paginate[T any](items []T, page entity.Page) []T {
	if page.Skip >= len(items) {
		return []T{}
	}
	items = items[page.Skip:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}

	return items
}

type memUsers struct{ s *memStore }

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if err := r.s.failure("users.FindByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	if err := r.s.failure("users.Create"); err != nil {
		return err
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return errors.WithStack(domainerrors.ErrEmailTaken)
		}
	}
	now := r.s.clock()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = *user

	return nil
}

func (r memUsers) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = r.s.clock()
	r.s.users[user.ID] = *user

	return nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.LastLogin = &at
	r.s.users[id] = u

	return nil
}

// Delete cascades the way the foreign keys do.
func (r memUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.s.users, id)
	for pid, p := range r.s.projects {
		if p.UserID == id {
			memProjects{r.s}.cascade(pid)
		}
	}
	for nid, n := range r.s.notifications {
		if n.UserID == id {
			delete(r.s.notifications, nid)
		}
	}

	return nil
}

func (r memUsers) Stats(_ context.Context, id uuid.UUID) (*entity.UserStats, error) {
	stats := &entity.UserStats{}
	for _, p := range r.s.projects {
		if p.UserID == id {
			stats.TotalProjects++
		}
	}
	for _, f := range r.s.feedback {
		if f.UserID == id {
			stats.TotalFeedbacks++
		}
	}
	for _, rev := range r.s.revisions {
		if f, ok := r.s.feedback[rev.FeedbackID]; ok && f.UserID == id {
			stats.TotalRevisions++
		}
	}

	return stats, nil
}

type memProjects struct{ s *memStore }

func (r memProjects) Create(_ context.Context, project *entity.Project) error {
	now := r.s.clock()
	project.ID = uuid.New()
	project.CreatedAt = now
	project.UpdatedAt = now
	r.s.projects[project.ID] = *project

	return nil
}

func (r memProjects) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.Project, error) {
	p, ok := r.s.projects[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrProjectNotFound
	}

	return &p, nil
}

func (r memProjects) ListByUser(_ context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.s.projects {
		if p.UserID == userID {
			out = append(out, &p)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Project) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return paginate(out, page), nil
}

func (r memProjects) Update(_ context.Context, project *entity.Project) error {
	if _, ok := r.s.projects[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	project.UpdatedAt = r.s.clock()
	r.s.projects[project.ID] = *project

	return nil
}

func (r memProjects) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := r.FindByIDForUser(ctx, id, userID); err != nil {
		return err
	}
	r.cascade(id)

	return nil
}

func (r memProjects) cascade(id uuid.UUID) {
	delete(r.s.projects, id)
	for fid, f := range r.s.feedback {
		if f.ProjectID == id {
			memFeedback{r.s}.cascade(fid)
		}
	}
}

type memFeedback struct{ s *memStore }

func (r memFeedback) Create(_ context.Context, feedback *entity.Feedback) error {
	if err := r.s.failure("feedback.Create"); err != nil {
		return err
	}
	now := r.s.clock()
	feedback.ID = uuid.New()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now
	r.s.feedback[feedback.ID] = *feedback

	return nil
}

func (r memFeedback) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.Feedback, error) {
	f, ok := r.s.feedback[id]
	if !ok || f.UserID != userID {
		return nil, repository.ErrFeedbackNotFound
	}

	return &f, nil
}

func (r memFeedback) LockForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Feedback, error) {
	return r.FindByIDForUser(ctx, id, userID)
}

func (r memFeedback) ListByProject(_ context.Context, projectID, userID uuid.UUID, page entity.Page) ([]*entity.Feedback, error) {
	var out []*entity.Feedback
	for _, f := range r.s.feedback {
		if f.ProjectID == projectID && f.UserID == userID {
			out = append(out, &f)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Feedback) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return paginate(out, page), nil
}

func (r memFeedback) Update(_ context.Context, feedback *entity.Feedback) error {
	if _, ok := r.s.feedback[feedback.ID]; !ok {
		return repository.ErrFeedbackNotFound
	}
	feedback.UpdatedAt = r.s.clock()
	r.s.feedback[feedback.ID] = *feedback

	return nil
}

func (r memFeedback) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := r.FindByIDForUser(ctx, id, userID); err != nil {
		return err
	}
	r.cascade(id)

	return nil
}

func (r memFeedback) cascade(id uuid.UUID) {
	delete(r.s.feedback, id)
	for rid, rev := range r.s.revisions {
		if rev.FeedbackID == id {
			delete(r.s.revisions, rid)
		}
	}
	for aid, item := range r.s.actionItems {
		if item.FeedbackID == id {
			delete(r.s.actionItems, aid)
		}
	}
}

type memRevisions struct{ s *memStore }

func (r memRevisions) Create(_ context.Context, revision *entity.Revision) error {
	if err := r.s.failure("revisions.Create"); err != nil {
		return err
	}
	for _, rev := range r.s.revisions {
		if rev.FeedbackID == revision.FeedbackID && rev.Version == revision.Version {
			return errors.WithStack(repository.ErrRevisionVersionTaken)
		}
	}
	now := r.s.clock()
	revision.ID = uuid.New()
	revision.CreatedAt = now
	revision.UpdatedAt = now
	r.s.revisions[revision.ID] = *revision

	return nil
}

func (r memRevisions) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.Revision, error) {
	rev, ok := r.s.revisions[id]
	if !ok {
		return nil, repository.ErrRevisionNotFound
	}
	if f, ok := r.s.feedback[rev.FeedbackID]; !ok || f.UserID != userID {
		return nil, repository.ErrRevisionNotFound
	}

	return &rev, nil
}

func (r memRevisions) ListByFeedback(_ context.Context, feedbackID uuid.UUID) ([]*entity.Revision, error) {
	var out []*entity.Revision
	for _, rev := range r.s.revisions {
		if rev.FeedbackID == feedbackID {
			out = append(out, &rev)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Revision) int { return b.Version - a.Version })

	return out, nil
}

func (r memRevisions) LatestVersion(_ context.Context, feedbackID uuid.UUID) (int, error) {
	if err := r.s.failure("revisions.LatestVersion"); err != nil {
		return 0, err
	}
	latest := 0
	for _, rev := range r.s.revisions {
		if rev.FeedbackID == feedbackID && rev.Version > latest {
			latest = rev.Version
		}
	}

	return latest, nil
}

func (r memRevisions) Update(_ context.Context, revision *entity.Revision) error {
	if _, ok := r.s.revisions[revision.ID]; !ok {
		return repository.ErrRevisionNotFound
	}
	revision.UpdatedAt = r.s.clock()
	r.s.revisions[revision.ID] = *revision

	return nil
}

type memActionItems struct{ s *memStore }

func (r memActionItems) Create(_ context.Context, item *entity.ActionItem) error {
	now := r.s.clock()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.actionItems[item.ID] = *item

	return nil
}

func (r memActionItems) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.ActionItem, error) {
	item, ok := r.s.actionItems[id]
	if !ok {
		return nil, repository.ErrActionItemNotFound
	}
	if f, ok := r.s.feedback[item.FeedbackID]; !ok || f.UserID != userID {
		return nil, repository.ErrActionItemNotFound
	}

	return &item, nil
}

func (r memActionItems) ListByFeedback(_ context.Context, feedbackID uuid.UUID) ([]*entity.ActionItem, error) {
	var out []*entity.ActionItem
	for _, item := range r.s.actionItems {
		if item.FeedbackID == feedbackID {
			out = append(out, &item)
		}
	}
	slices.SortFunc(out, func(a, b *entity.ActionItem) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out, nil
}

func (r memActionItems) Update(_ context.Context, item *entity.ActionItem) error {
	if _, ok := r.s.actionItems[item.ID]; !ok {
		return repository.ErrActionItemNotFound
	}
	item.UpdatedAt = r.s.clock()
	r.s.actionItems[item.ID] = *item

	return nil
}

func (r memActionItems) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.actionItems[id]; !ok {
		return repository.ErrActionItemNotFound
	}
	delete(r.s.actionItems, id)

	return nil
}

type memNotifications struct{ s *memStore }

func (r memNotifications) Create(_ context.Context, notification *entity.Notification) error {
	if err := r.s.failure("notifications.Create"); err != nil {
		return err
	}
	notification.ID = uuid.New()
	notification.CreatedAt = r.s.clock()
	r.s.notifications[notification.ID] = *notification

	return nil
}

func (r memNotifications) ListByUser(_ context.Context, userID uuid.UUID, unreadOnly bool, page entity.Page) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID && (!unreadOnly || !n.IsRead) {
			out = append(out, &n)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Notification) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return paginate(out, page), nil
}

func (r memNotifications) MarkRead(_ context.Context, id, userID uuid.UUID, at time.Time) (*entity.Notification, error) {
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return nil, repository.ErrNotificationNotFound
	}
	if !n.IsRead {
		n.IsRead = true
		n.ReadAt = &at
		r.s.notifications[id] = n
	}

	return &n, nil
}

func (r memNotifications) MarkAllRead(_ context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	var marked int64
	for id, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &at
			r.s.notifications[id] = n
			marked++
		}
	}

	return marked, nil
}

func (r memNotifications) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}

	return count, nil
}
