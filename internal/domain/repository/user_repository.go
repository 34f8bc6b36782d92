// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email yields domainerrors.ErrEmailTaken.
	Create(ctx context.Context, user *entity.User) error

	// Update saves email, full name, password hash and flags of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the last successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes the user; owned rows cascade in the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats counts the projects, feedback and revisions owned by the user.
	Stats(ctx context.Context, id uuid.UUID) (*entity.UserStats, error)
}
