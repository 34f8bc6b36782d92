package entity

import "github.com/google/uuid"

// TokenType distinguishes access tokens from refresh tokens inside the signed claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenTypeBearer is the token_type reported alongside every issued pair.
const TokenTypeBearer = "bearer"

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// Identity is the caller resolved from a bearer access token.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	IsActive bool
	User     *User // The freshly loaded account the identity was checked against.
}
