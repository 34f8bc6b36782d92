package handler

import (
	"time"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   *string    `json:"full_name"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastLogin  *time.Time `json:"last_login"`
}

// UserStatsResponse counts what a user owns.
type UserStatsResponse struct {
	TotalProjects  int64 `json:"total_projects"`
	TotalFeedbacks int64 `json:"total_feedbacks"`
	TotalRevisions int64 `json:"total_revisions"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Status      entity.ProjectStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type FeedbackResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	ProjectID uuid.UUID             `json:"project_id"`
	RawText   string                `json:"raw_text"`
	Summary   map[string]any        `json:"summary"`
	Sentiment *string               `json:"sentiment"`
	Priority  *string               `json:"priority"`
	Status    entity.FeedbackStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type ActionItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	FeedbackID  uuid.UUID  `json:"feedback_id"`
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type RevisionResponse struct {
	ID         uuid.UUID             `json:"id"`
	FeedbackID uuid.UUID             `json:"feedback_id"`
	Version    int                   `json:"version"`
	Notes      *string               `json:"notes"`
	FileURL    *string               `json:"file_url"`
	FileName   *string               `json:"file_name"`
	FileSize   *int64                `json:"file_size"`
	FileType   *string               `json:"file_type"`
	Status     entity.RevisionStatus `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
	ApprovedAt *time.Time            `json:"approved_at"`
}

type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	Type      entity.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   *string                 `json:"message"`
	IsRead    bool                    `json:"is_read"`
	Metadata  map[string]any          `json:"metadata"`
	CreatedAt time.Time               `json:"created_at"`
	ReadAt    *time.Time              `json:"read_at"`
}

// optional renders empty strings as JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   optional(u.FullName),
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastLogin:  u.LastLogin,
	}
}

func newTokenResponse(pair *entity.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}

func newProjectResponse(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: optional(p.Description),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newFeedbackResponse(f *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		ProjectID: f.ProjectID,
		RawText:   f.RawText,
		Summary:   f.Summary,
		Sentiment: optional(f.Sentiment),
		Priority:  optional(f.Priority),
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func newActionItemResponse(a *entity.ActionItem) ActionItemResponse {
	return ActionItemResponse{
		ID:          a.ID,
		FeedbackID:  a.FeedbackID,
		Description: a.Description,
		Priority:    a.Priority,
		IsCompleted: a.IsCompleted,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		CompletedAt: a.CompletedAt,
	}
}

func newRevisionResponse(r *entity.Revision) RevisionResponse {
	resp := RevisionResponse{
		ID:         r.ID,
		FeedbackID: r.FeedbackID,
		Version:    r.Version,
		Notes:      optional(r.Notes),
		FileURL:    optional(r.FileURL),
		FileName:   optional(r.FileName),
		FileType:   optional(r.FileType),
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		ApprovedAt: r.ApprovedAt,
	}
	if r.FileName != "" {
		size := r.FileSize
		resp.FileSize = &size
	}

	return resp
}

func newNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   optional(n.Message),
		IsRead:    n.IsRead,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}

func mapAll[T any, R any](items []*T, convert func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return out
}
