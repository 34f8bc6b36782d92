package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"freelancer/config"
	"freelancer/internal/domain/service"
	"freelancer/internal/infra/auth"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testTokenSecret = "test_secret_key_very_long_for_testing_purposes"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{
			Secret:     testTokenSecret,
			Algorithm:  "HS256",
			AccessTTL:  30 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// testClock only moves when told to.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestHasher(t *testing.T, cfg *config.Config) service.PasswordHasher {
	t.Helper()

	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)

	return hasher
}

func newTestTokenService(t *testing.T, cfg *config.Config, clock *testClock) service.TokenService {
	t.Helper()

	tokens, err := auth.NewJWTService(cfg, clock.Now)
	require.NoError(t, err)

	return tokens
}
