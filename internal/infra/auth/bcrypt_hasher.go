// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"freelancer/config"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordBytes is the number of password bytes bcrypt actually uses.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := config.DefaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
func NewBcryptHasherWithCost(cost int, strength config.PasswordStrengthConfig) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost, strength: strength}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(domainerrors.ErrMalformedStoredHash, err.Error())
	}
}

// ValidatePasswordStrength checks the password against the configured policy and
// reports every unmet rule at once.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	length := utf8.RuneCountInString(password)
	if h.strength.MinLength > 0 && length < h.strength.MinLength {
		problems = append(problems, fmt.Sprintf("must be at least %d characters long", h.strength.MinLength))
	}
	if h.strength.MaxLength > 0 && length > h.strength.MaxLength {
		problems = append(problems, fmt.Sprintf("must be at most %d characters long", h.strength.MaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "must contain at least one uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "must contain at least one lowercase letter")
	}
	if h.strength.RequireNumbers && !hasDigit {
		problems = append(problems, "must contain at least one digit")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		problems = append(problems, "must contain at least one special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password " + strings.Join(problems, "; "))
	}

	return nil
}

// truncatePassword keeps the first 72 bytes; bcrypt ignores the rest and
// GenerateFromPassword rejects longer input outright.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordBytes {
		b = b[:bcryptMaxPasswordBytes]
	}

	return b
}
