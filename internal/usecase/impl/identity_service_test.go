package impl

import (
	"context"
	"testing"
	"time"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/service"
	mockSvc "freelancer/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{name: "lower-case scheme", header: "bearer abc", token: "abc", ok: true},
		{name: "upper-case scheme", header: "BEARER abc", token: "abc", ok: true},
		{name: "surrounding spaces", header: "  Bearer   abc  ", token: "abc", ok: true},
		{name: "empty", header: ""},
		{name: "scheme only", header: "Bearer"},
		{name: "scheme and blank token", header: "Bearer    "},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz"},
		{name: "token without scheme", header: "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := parseBearer(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestIdentityService_RejectsMissingCredentials(t *testing.T) {
	f := newAuthFixture(t)

	for _, header := range []string{"", "Bearer", "Token abc", "Basic Zm9vOmJhcg=="} {
		_, err := f.identity.Resolve(context.Background(), header)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials, "header %q", header)
	}
}

func TestIdentityService_RejectsInvalidTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.identity.Resolve(ctx, "Bearer garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	ghost, err := f.tokens.IssueAccess(uuid.New(), "ghost@example.com")
	require.NoError(t, err)
	_, err = f.identity.Resolve(ctx, "Bearer "+ghost)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_TokenTypeAndExpiry(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	ctx := context.Background()

	_, err := f.identity.Resolve(ctx, "Bearer "+out.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrWrongTokenType)

	f.clock.Advance(30*time.Minute - time.Second)
	_, err = f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	require.NoError(t, err)

	f.clock.Advance(time.Second)
	_, err = f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestIdentityService_ReloadsUserOnEveryCall(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	ctx := context.Background()

	identity, err := f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, identity.IsActive)
	assert.Equal(t, aliceEmail, identity.Email)
	require.NotNil(t, identity.User)

	user, _ := f.store.userByEmail(aliceEmail)
	user.FullName = "Alice Liddell"
	f.store.putUser(user)

	identity, err = f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", identity.User.FullName)
}

func TestIdentityService_RejectsBadSubject(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	metrics := mockSvc.NewMockAuthMetrics(t)
	srv := NewIdentityService(IdentityServiceParams{
		TxManager:    newMemStore(newTestClock().Now),
		TokenService: tokens,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	claims := &service.Claims{
		Type:             entity.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
	}
	tokens.EXPECT().Decode("abc").Return(claims, nil)
	tokens.EXPECT().VerifyType(claims, entity.TokenTypeAccess).Return(nil)
	metrics.EXPECT().RecordAuthOutcome(service.AuthOutcomeInvalidToken).Return().Once()

	_, err := srv.Resolve(context.Background(), "Bearer abc")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestIdentityService_RecordsMissingCredentials(t *testing.T) {
	metrics := mockSvc.NewMockAuthMetrics(t)
	srv := NewIdentityService(IdentityServiceParams{
		TxManager:    newMemStore(newTestClock().Now),
		TokenService: mockSvc.NewMockTokenService(t),
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	metrics.EXPECT().RecordAuthOutcome(service.AuthOutcomeMissingCredentials).Return().Once()

	_, err := srv.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}
