package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/repository"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"
	mockRepo "freelancer/internal/mocks/repository"
	mockSvc "freelancer/internal/mocks/service"
	"freelancer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	aliceEmail    = "alice@example.com"
	alicePassword = "Passw0rd!"
)

// authFixture wires the credential and identity services to an in-memory store
// with a real hasher and a real token codec driven by a test clock.
type authFixture struct {
	store    *memStore
	clock    *testClock
	tokens   service.TokenService
	users    usecase.UserUsecase
	identity usecase.IdentityUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := newTestConfig()
	clock := newTestClock()
	store := newMemStore(clock.Now)
	tokens := newTestTokenService(t, cfg, clock)
	hasher := newTestHasher(t, cfg)

	return &authFixture{
		store:  store,
		clock:  clock,
		tokens: tokens,
		users: NewUserService(UserServiceParams{
			TxManager:    store,
			Hasher:       hasher,
			TokenService: tokens,
			Clock:        clock.Now,
			Logger:       newDiscardLogger(),
		}),
		identity: NewIdentityService(IdentityServiceParams{
			TxManager:    store,
			TokenService: tokens,
			Logger:       newDiscardLogger(),
		}),
	}
}

func (f *authFixture) register(t *testing.T, email, password string) *entity.User {
	t.Helper()

	out, err := f.users.Register(context.Background(), &usecase.RegisterInput{Email: email, Password: password})
	require.NoError(t, err)

	return out.User
}

func (f *authFixture) login(t *testing.T, email, password string) *usecase.LoginOutput {
	t.Helper()

	out, err := f.users.Login(context.Background(), &usecase.LoginInput{Email: email, Password: password})
	require.NoError(t, err)

	return out
}

func (f *authFixture) deactivate(t *testing.T, email string) {
	t.Helper()

	user, ok := f.store.userByEmail(email)
	require.True(t, ok)
	user.IsActive = false
	f.store.putUser(user)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered := f.register(t, aliceEmail, alicePassword)
	assert.NotEqual(t, uuid.Nil, registered.ID)
	assert.Equal(t, aliceEmail, registered.Email)
	assert.True(t, registered.IsActive)
	assert.False(t, registered.IsVerified)
	assert.Empty(t, registered.HashedPassword)

	stored, ok := f.store.userByEmail(aliceEmail)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(stored.HashedPassword, "$2"))
	assert.NotContains(t, stored.HashedPassword, alicePassword)

	out := f.login(t, aliceEmail, alicePassword)
	assert.Equal(t, entity.TokenTypeBearer, out.Tokens.TokenType)
	assert.Empty(t, out.User.HashedPassword)
	require.NotNil(t, out.User.LastLogin)
	assert.Equal(t, f.clock.now, *out.User.LastLogin)

	claims, err := f.tokens.Decode(out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.Subject)
	assert.Equal(t, entity.TokenTypeAccess, claims.Type)

	stored, _ = f.store.userByEmail(aliceEmail)
	require.NotNil(t, stored.LastLogin)

	identity, err := f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.UserID)
}

func TestUserService_EmailIsCaseSensitive(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	upper := f.register(t, "  Alice@example.com ", alicePassword)
	assert.Equal(t, "Alice@example.com", upper.Email)

	lower := f.register(t, aliceEmail, "An0therPass")
	assert.NotEqual(t, upper.ID, lower.ID)
	assert.Equal(t, aliceEmail, lower.Email)

	out := f.login(t, "Alice@example.com", alicePassword)
	assert.Equal(t, upper.ID, out.User.ID)

	out = f.login(t, aliceEmail, "An0therPass")
	assert.Equal(t, lower.ID, out.User.ID)

	_, err := f.users.Login(ctx, &usecase.LoginInput{Email: "ALICE@EXAMPLE.COM", Password: alicePassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)

	_, err := f.users.Register(context.Background(), &usecase.RegisterInput{Email: aliceEmail, Password: "An0therPass"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	_, err = f.users.Register(context.Background(), &usecase.RegisterInput{Email: " " + aliceEmail, Password: "An0therPass"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_RegisterWeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.users.Register(context.Background(), &usecase.RegisterInput{Email: aliceEmail, Password: "short"})
	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	_, ok := f.store.userByEmail(aliceEmail)
	assert.False(t, ok)
}

func TestUserService_LoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	ctx := context.Background()

	_, wrongPassword := f.users.Login(ctx, &usecase.LoginInput{Email: aliceEmail, Password: "Wr0ngPassword"})
	_, unknownEmail := f.users.Login(ctx, &usecase.LoginInput{Email: "bob@example.com", Password: alicePassword})

	require.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, domainerrors.ErrInvalidCredentials)

	var a, b domainerrors.AppError
	require.True(t, errors.As(wrongPassword, &a))
	require.True(t, errors.As(unknownEmail, &b))
	assert.Equal(t, a.HTTPCode(), b.HTTPCode())
	assert.Equal(t, a.Message(), b.Message())
}

func TestUserService_Refresh(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	ctx := context.Background()

	_, err := f.users.Refresh(ctx, out.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrWrongTokenType)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	f.clock.Advance(time.Minute)
	pair, err := f.users.Refresh(ctx, out.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeBearer, pair.TokenType)

	claims, err := f.tokens.Decode(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeRefresh, claims.Type)
	assert.Equal(t, f.clock.now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	_, err = f.users.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_RefreshRejectsDeletedAndInactiveUsers(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	ghost, err := f.tokens.IssueRefresh(uuid.New())
	require.NoError(t, err)
	_, err = f.users.Refresh(ctx, ghost)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	f.deactivate(t, aliceEmail)

	_, err = f.users.Refresh(ctx, out.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)
}

func TestUserService_InactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	ctx := context.Background()

	f.deactivate(t, aliceEmail)

	_, err := f.users.Login(ctx, &usecase.LoginInput{Email: aliceEmail, Password: alicePassword})
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)

	_, err = f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)
}

func TestUserService_LoginWrongPasswordForInactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)
	f.deactivate(t, aliceEmail)

	// The password is checked before the account state.
	_, err := f.users.Login(context.Background(), &usecase.LoginInput{Email: aliceEmail, Password: "Wr0ngPassword"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_PasswordsAreTruncatedTo72Bytes(t *testing.T) {
	f := newAuthFixture(t)
	password := "Aa1" + strings.Repeat("a", 77)
	require.Len(t, password, 80)

	f.register(t, aliceEmail, password)

	sameFirst72 := password[:72] + "XYZ9"
	f.login(t, aliceEmail, sameFirst72)

	_, err := f.users.Login(context.Background(), &usecase.LoginInput{Email: aliceEmail, Password: password[:71]})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_MalformedStoredHash(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, aliceEmail, alicePassword)

	user, _ := f.store.userByEmail(aliceEmail)
	user.HashedPassword = "not-a-bcrypt-hash"
	f.store.putUser(user)

	_, err := f.users.Login(context.Background(), &usecase.LoginInput{Email: aliceEmail, Password: alicePassword})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedStoredHash)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_MeAndLogout(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, aliceEmail, alicePassword)
	out := f.login(t, aliceEmail, alicePassword)
	ctx := context.Background()

	identity, err := f.identity.Resolve(ctx, "Bearer "+out.Tokens.AccessToken)
	require.NoError(t, err)

	me, err := f.users.Me(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, me.ID)
	assert.Empty(t, me.HashedPassword)

	me, err = f.users.Me(ctx, &entity.Identity{UserID: registered.ID})
	require.NoError(t, err)
	assert.Equal(t, aliceEmail, me.Email)

	_, err = f.users.Me(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)

	assert.Equal(t, usecase.LogoutMessage, f.users.Logout(ctx, identity))
}

func TestUserService_RecordsAuthOutcomes(t *testing.T) {
	cfg := newTestConfig()
	clock := newTestClock()
	store := newMemStore(clock.Now)
	metrics := mockSvc.NewMockAuthMetrics(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    store,
		Hasher:       newTestHasher(t, cfg),
		TokenService: newTestTokenService(t, cfg, clock),
		Clock:        clock.Now,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	metrics.EXPECT().RecordAuthOutcome(service.AuthOutcomeRegistered).Return().Once()
	metrics.EXPECT().RecordAuthOutcome(service.AuthOutcomeLoginSuccess).Return().Once()
	metrics.EXPECT().RecordAuthOutcome(service.AuthOutcomeLoginFailed).Return().Once()

	_, err := srv.Register(ctx, &usecase.RegisterInput{Email: aliceEmail, Password: alicePassword})
	require.NoError(t, err)
	_, err = srv.Login(ctx, &usecase.LoginInput{Email: aliceEmail, Password: alicePassword})
	require.NoError(t, err)
	_, err = srv.Login(ctx, &usecase.LoginInput{Email: aliceEmail, Password: "Wr0ngPassword"})
	require.Error(t, err)
}

func TestUserService_RegisterHashFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	hasher.EXPECT().ValidatePasswordStrength(alicePassword).Return(nil)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		}).Once()
	repoFactory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByEmail(mock.Anything, aliceEmail).Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash(alicePassword).Return("", errors.WithStack(domainerrors.ErrPasswordHashFailed))

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{Email: aliceEmail, Password: alicePassword})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_RegisterTransactionFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	hasher.EXPECT().ValidatePasswordStrength(alicePassword).Return(nil)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(domainerrors.ErrTransactionFailed.WrapMessage("connection reset"))

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{Email: aliceEmail, Password: alicePassword})
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestUserService_LoginTokenIssueFailure(t *testing.T) {
	cfg := newTestConfig()
	clock := newTestClock()
	store := newMemStore(clock.Now)
	hasher := newTestHasher(t, cfg)
	tokens := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    store,
		Hasher:       hasher,
		TokenService: tokens,
		Clock:        clock.Now,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	_, err := srv.Register(ctx, &usecase.RegisterInput{Email: aliceEmail, Password: alicePassword})
	require.NoError(t, err)

	tokens.EXPECT().IssuePair(mock.Anything, aliceEmail).Return(nil, errors.New("signing failed"))

	_, err = srv.Login(ctx, &usecase.LoginInput{Email: aliceEmail, Password: alicePassword})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to issue tokens")
}
