package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table. Summary is stored as JSONB.
type FeedbackModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index"`
	RawText   string         `gorm:"type:text;not null"`
	Summary   map[string]any `gorm:"type:jsonb;serializer:json"`
	Sentiment string         `gorm:"type:varchar(50)"`
	Priority  string         `gorm:"type:varchar(50)"`
	Status    string         `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}

// ActionItemModel mirrors the 'action_items' table.
type ActionItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FeedbackID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	IsCompleted bool      `gorm:"not null"`
	Priority    int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActionItemModel) TableName() string {
	return "action_items"
}
