package model

import (
	"time"

	"github.com/google/uuid"
)

// RevisionModel mirrors the 'revisions' table. (feedback_id, version) is unique.
type RevisionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_revisions_feedback_version"`
	Version    int       `gorm:"not null;uniqueIndex:uq_revisions_feedback_version"`
	FileURL    string    `gorm:"type:varchar(500)"`
	FileName   string    `gorm:"type:varchar(255)"`
	FileSize   int64
	FileType   string `gorm:"type:varchar(100)"`
	Status     string `gorm:"type:varchar(50);not null"`
	Notes      string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RevisionModel) TableName() string {
	return "revisions"
}
