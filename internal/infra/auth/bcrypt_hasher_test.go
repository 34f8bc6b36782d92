package auth

import (
	"strings"
	"testing"

	"freelancer/config"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func defaultStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        100,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
}

func newFastHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, defaultStrength())
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newFastHasher(t)

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	ok, err := hasher.Check("Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("WrongPass1", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := newFastHasher(t)

	first, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	require.NoError(t, err)

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBcryptCost, cost)

	hasher, err = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})
	require.NoError(t, err)
	hash, err = hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_RejectsOutOfRangeCost(t *testing.T) {
	_, err := NewBcryptHasherWithCost(bcrypt.MaxCost+1, defaultStrength())
	assert.Error(t, err)

	_, err = NewBcryptHasherWithCost(bcrypt.MinCost-1, defaultStrength())
	assert.Error(t, err)
}

func TestBcryptHasher_TruncatesTo72Bytes(t *testing.T) {
	hasher := newFastHasher(t)

	long := strings.Repeat("a", 80)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	for _, candidate := range []string{
		strings.Repeat("a", 72),
		strings.Repeat("a", 72) + "zzzzzzzz",
		long,
	} {
		ok, err := hasher.Check(candidate, hash)
		require.NoError(t, err)
		assert.True(t, ok, "candidate of %d bytes should verify", len(candidate))
	}

	ok, err := hasher.Check(strings.Repeat("a", 71), hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHashIsAnError(t *testing.T) {
	hasher := newFastHasher(t)

	for _, stored := range []string{"", "invalid_hash", "$2b$" + strings.Repeat("x", 60)} {
		ok, err := hasher.Check("Passw0rd!", stored)
		assert.False(t, ok)
		require.Error(t, err, "stored hash %q", stored)
		assert.True(t, errors.Is(err, domainerrors.ErrMalformedStoredHash))
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newFastHasher(t)

	for _, password := range []string{"Passw0rd!", "Abcdefg1", "MySecure9Pass"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	tests := []struct {
		password string
		reason   string
	}{
		{password: "Ab1", reason: "at least 8 characters"},
		{password: "password123", reason: "uppercase"},
		{password: "PASSWORD123", reason: "lowercase"},
		{password: "PasswordABC", reason: "digit"},
		{password: "Aa1" + strings.Repeat("x", 100), reason: "at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.reason)
		})
	}
}

func TestBcryptHasher_RequireSpecial(t *testing.T) {
	strength := defaultStrength()
	strength.RequireSpecial = true
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, strength)
	require.NoError(t, err)

	assert.Error(t, hasher.ValidatePasswordStrength("Passw0rd"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Passw0rd!"))
}
