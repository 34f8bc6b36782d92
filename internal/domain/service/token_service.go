package service

import (
	"freelancer/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// The subject (user id) travels in RegisteredClaims.Subject as a string.
type Claims struct {
	Email string           `json:"email,omitempty"`
	Type  entity.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed access/refresh tokens.
type TokenService interface {
	// IssueAccess signs a short-lived token carrying the subject and email.
	IssueAccess(subject uuid.UUID, email string) (string, error)

	// IssueRefresh signs a long-lived token carrying only the subject.
	IssueRefresh(subject uuid.UUID) (string, error)

	// IssuePair signs one token of each type.
	IssuePair(subject uuid.UUID, email string) (*entity.TokenPair, error)

	// Decode verifies signature and expiry. Every failure is domainerrors.ErrInvalidToken.
	Decode(token string) (*Claims, error)

	// VerifyType fails with domainerrors.ErrWrongTokenType on mismatch.
	VerifyType(claims *Claims, expected entity.TokenType) error
}
