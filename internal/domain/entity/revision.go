package entity

import (
	"time"

	"github.com/google/uuid"
)

// RevisionStatus is the review state of a submitted revision.
type RevisionStatus string

const (
	RevisionStatusPending  RevisionStatus = "pending"
	RevisionStatusInReview RevisionStatus = "in_review"
	RevisionStatusApproved RevisionStatus = "approved"
	RevisionStatusRejected RevisionStatus = "rejected"
)

func (s RevisionStatus) Valid() bool {
	switch s {
	case RevisionStatusPending, RevisionStatusInReview, RevisionStatusApproved, RevisionStatusRejected:
		return true
	default:
		return false
	}
}

// Revision is one numbered deliverable produced in response to feedback.
type Revision struct {
	ID         uuid.UUID
	FeedbackID uuid.UUID
	Version    int // Monotonic per feedback, starting at 1.
	FileURL    string
	FileName   string
	FileSize   int64
	FileType   string
	Status     RevisionStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
}

// RevisionFile is the metadata of a file attached to a revision upload.
type RevisionFile struct {
	Name        string
	ContentType string
	Size        int64
}
