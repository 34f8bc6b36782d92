// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"freelancer/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user. The password hash is cleared.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens *entity.TokenPair
	User   *entity.User
}

// LogoutMessage is the confirmation returned by Logout.
const LogoutMessage = "Successfully logged out"

// UserUsecase defines the credential operations: registration, login and token refresh.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a refresh token for a new pair. The old token stays valid until it expires.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Me returns the account behind a resolved identity.
	Me(ctx context.Context, identity *entity.Identity) (*entity.User, error)

	// Logout is stateless; clients discard their tokens.
	Logout(ctx context.Context, identity *entity.Identity) string
}
