// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account of a freelancer together with its stored credential.
type User struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email          string     // Login identifier, unique across all users.
	HashedPassword string     // bcrypt hash of the password, never exposed outside the service layer.
	FullName       string     // Optional display name.
	IsActive       bool       // Inactive accounts are refused at login and on every authenticated request.
	IsVerified     bool       // Email verification flag, informational only.
	IsSuperuser    bool       // Administrative flag, not used for authorization yet.
	LastLogin      *time.Time // Timestamp of the most recent successful login.
	CreatedAt      time.Time  // Timestamp of when this user account was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this user's data.
}

// UserStats aggregates what a user owns.
type UserStats struct {
	TotalProjects  int64
	TotalFeedbacks int64
	TotalRevisions int64
}
