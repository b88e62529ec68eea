package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/agenthub-cli/internal/adapters/credential"
	filestore "github.com/bnema/agenthub-cli/internal/adapters/secrets/file"
	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type managerFixture struct {
	manager *SessionManager
	client  *mocks.MockAuthClient
	store   *credential.Store
}

func newManagerFixture(t *testing.T, storedToken string) managerFixture {
	t.Helper()

	ctx := context.Background()
	store, err := credential.Open(ctx, filestore.NewStore(t.TempDir()), credential.DefaultKey)
	require.NoError(t, err)
	if storedToken != "" {
		require.NoError(t, store.SetCredential(ctx, storedToken))
	}

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()

	client := mocks.NewMockAuthClient(t)
	return managerFixture{
		manager: NewSessionManager(client, store, clock, nil),
		client:  client,
		store:   store,
	}
}

func storedToken(t *testing.T, store *credential.Store) string {
	t.Helper()

	token, _ := store.Credential()
	return token
}

func TestSessionManagerIsLoadingUntilInitCompletes(t *testing.T) {
	f := newManagerFixture(t, "")

	assert.True(t, f.manager.State().IsLoading)

	f.manager.Init(context.Background())

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestSessionManagerInitPopulatesUserFromValidCredential(t *testing.T) {
	f := newManagerFixture(t, "stored")
	user := domain.User{ID: "1", Email: "a@b.co", Username: "ab"}
	f.client.EXPECT().Profile(mock.Anything).Return(user, nil).Once()

	f.manager.Init(context.Background())
	f.manager.Init(context.Background())

	state := f.manager.State()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.User)
	assert.Equal(t, user, *state.User)
	assert.Equal(t, fixedNow, state.VerifiedAt)
}

func TestSessionManagerInitClearsRejectedCredential(t *testing.T) {
	f := newManagerFixture(t, "expired")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{}, &domain.AuthError{Message: "Token has expired"}).Once()

	f.manager.Init(context.Background())

	state := f.manager.State()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Error)
	assert.False(t, f.store.HasActiveSession())
}

func TestSessionManagerInitKeepsCredentialWhenInterrupted(t *testing.T) {
	f := newManagerFixture(t, "stored")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{}, &domain.AuthError{Message: domain.MessageNetworkError, Err: context.Canceled}).Once()

	f.manager.Init(ctx)

	assert.True(t, f.store.HasActiveSession())
	assert.False(t, f.manager.State().IsLoading)
}

func TestSessionManagerLoginSuccessStoresToken(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	creds := domain.Credentials{Email: "a@b.co", Password: "pw"}
	user := domain.User{ID: "1", Email: "a@b.co", Username: "ab"}
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{Message: "ok", User: user, Token: "abc"}, nil).Once()

	got, err := f.manager.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	state := f.manager.State()
	assert.True(t, state.IsAuthenticated)
	assert.Empty(t, state.Error)
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.User)
	assert.Equal(t, user, *state.User)
	assert.Equal(t, "abc", storedToken(t, f.store))
}

func TestSessionManagerLoginFailureLeavesStoreUnchanged(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	creds := domain.Credentials{Email: "a@b.co", Password: "bad"}
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{}, &domain.AuthError{Message: "Invalid credentials"}).Once()

	_, err := f.manager.Login(context.Background(), creds)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	state := f.manager.State()
	assert.Nil(t, state.User)
	assert.Equal(t, "Invalid credentials", state.Error)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.False(t, f.store.HasActiveSession())
}

func TestSessionManagerLoginFailureWithoutMessageUsesFallback(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())
	f.client.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.AuthResult{}, &domain.AuthError{}).Once()

	_, err := f.manager.Login(context.Background(), domain.Credentials{Email: "a@b.co"})
	require.Error(t, err)
	assert.Equal(t, "Login failed", f.manager.State().Error)
}

func TestSessionManagerOperationClearsPreviousError(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	creds := domain.Credentials{Email: "a@b.co", Password: "pw"}
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{}, &domain.AuthError{Message: "Invalid credentials"}).Once()
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{User: domain.User{ID: "1"}, Token: "abc"}, nil).Once()

	_, err := f.manager.Login(context.Background(), creds)
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", f.manager.State().Error)

	_, err = f.manager.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Empty(t, f.manager.State().Error)
}

func TestSessionManagerSignupDerivesUsername(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	payload := domain.SignupPayload{Email: "j@d.co", Password: "pw", Username: "johndoe"}
	user := domain.User{ID: "7", Email: "j@d.co", Username: "johndoe"}
	f.client.EXPECT().Signup(mock.Anything, payload).Return(domain.AuthResult{User: user, Token: "new"}, nil).Once()

	got, err := f.manager.Signup(context.Background(), domain.SignupRequest{
		Email:     "j@d.co",
		Password:  "pw",
		FirstName: "John",
		LastName:  "Doe",
		Company:   "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "new", storedToken(t, f.store))
}

func TestSessionManagerSignupFailureUsesFallbackMessage(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())
	f.client.EXPECT().Signup(mock.Anything, mock.Anything).Return(domain.AuthResult{}, &domain.AuthError{}).Once()

	_, err := f.manager.Signup(context.Background(), domain.SignupRequest{Email: "j@d.co", Username: "jd"})
	require.Error(t, err)
	assert.Equal(t, "Signup failed", f.manager.State().Error)
	assert.False(t, f.store.HasActiveSession())
}

func TestSessionManagerLogoutWithNetworkFailureStillSignsOut(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	f.manager.Init(context.Background())

	f.client.EXPECT().Logout(mock.Anything).Return("", &domain.AuthError{Message: domain.MessageNetworkError, Err: errors.New("connection refused")}).Once()

	require.NoError(t, f.manager.Logout(context.Background()))

	state := f.manager.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Equal(t, domain.MessageNetworkError, state.Error)
	assert.False(t, f.store.HasActiveSession())
}

func TestSessionManagerLogoutReturnsLocalClearFailure(t *testing.T) {
	secrets := mocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, credential.DefaultKey).Return("abc", nil).Once()
	secrets.EXPECT().Delete(mock.Anything, credential.DefaultKey).Return(errors.New("read-only filesystem")).Once()
	store, err := credential.Open(context.Background(), secrets, credential.DefaultKey)
	require.NoError(t, err)

	client := mocks.NewMockAuthClient(t)
	client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	client.EXPECT().Logout(mock.Anything).Return("Logged out", nil).Once()
	manager := NewSessionManager(client, store, nil, nil)

	err = manager.Logout(context.Background())
	require.ErrorContains(t, err, "clear session credential")
	assert.False(t, manager.State().IsAuthenticated)
}

func TestSessionManagerLogoutWithoutCredentialSkipsServer(t *testing.T) {
	f := newManagerFixture(t, "")

	require.NoError(t, f.manager.Logout(context.Background()))

	state := f.manager.State()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
}

func TestSessionManagerRefreshProfileRejectionExpiresSession(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	f.manager.Init(context.Background())

	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{}, &domain.AuthError{Message: "Token has expired"}).Once()

	_, err := f.manager.RefreshProfile(context.Background())
	require.Error(t, err)

	state := f.manager.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Equal(t, "Token has expired", state.Error)
	assert.True(t, state.VerifiedAt.IsZero())
}

func TestSessionManagerRefreshProfileUpdatesUser(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1", Username: "old"}, nil).Once()
	f.manager.Init(context.Background())

	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1", Username: "new"}, nil).Once()

	user, err := f.manager.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", user.Username)
	assert.Equal(t, "new", f.manager.State().User.Username)
}

func TestSessionManagerChangePasswordRequiresSession(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	_, err := f.manager.ChangePassword(context.Background(), "old", "new")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Equal(t, "You must be logged in to change your password.", f.manager.State().Error)
	assert.False(t, f.manager.State().IsLoading)
}

func TestSessionManagerChangePasswordFailureIsRecorded(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	f.manager.Init(context.Background())

	f.client.EXPECT().ChangePassword(mock.Anything, "old", "new").Return("", &domain.AuthError{Message: "Current password is incorrect"}).Once()

	_, err := f.manager.ChangePassword(context.Background(), "old", "new")
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", f.manager.State().Error)
	assert.True(t, f.store.HasActiveSession())
}

func TestSessionManagerRequestAgentRequiresSession(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	_, err := f.manager.RequestAgent(context.Background(), domain.AgentRequest{Agent: "VisionAI Scanner"})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.EqualError(t, err, domain.MessageLoginRequired)
	assert.Equal(t, domain.MessageLoginRequired, f.manager.State().Error)
}

func TestSessionManagerRequestAgentSubmitsWithSession(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	f.manager.Init(context.Background())

	request := domain.AgentRequest{FullName: "Jane", Email: "j@d.co", Agent: domain.CustomSolutionAgent, Requirements: "OCR"}
	f.client.EXPECT().RequestAgent(mock.Anything, request).Return(domain.AgentRequestReceipt{Message: "Request submitted", RequestID: "r-1"}, nil).Once()

	receipt, err := f.manager.RequestAgent(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "r-1", receipt.RequestID)
	assert.Empty(t, f.manager.State().Error)
}

func TestSessionManagerSubscribeReceivesSnapshots(t *testing.T) {
	f := newManagerFixture(t, "")

	var (
		mu     sync.Mutex
		states []SessionState
	)
	unsubscribe := f.manager.Subscribe(func(state SessionState) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, state)
	})

	f.manager.Init(context.Background())

	mu.Lock()
	require.NotEmpty(t, states)
	assert.False(t, states[len(states)-1].IsLoading)
	seen := len(states)
	mu.Unlock()

	unsubscribe()
	f.manager.ClearError()

	mu.Lock()
	assert.Len(t, states, seen)
	mu.Unlock()
}

func TestSessionManagerClearErrorResetsOnlyError(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())
	f.client.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.AuthResult{}, &domain.AuthError{Message: "Invalid credentials"}).Once()

	_, _ = f.manager.Login(context.Background(), domain.Credentials{Email: "a@b.co"})
	f.manager.ClearError()

	state := f.manager.State()
	assert.Empty(t, state.Error)
	assert.False(t, state.IsAuthenticated)
}

func TestSessionManagerTeardownDetachesSubscribers(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1"}, nil).Once()
	f.manager.Init(context.Background())

	called := false
	f.manager.Subscribe(func(SessionState) { called = true })

	f.manager.Teardown()
	f.manager.ClearError()

	assert.False(t, called)
	assert.Nil(t, f.manager.State().User)
	assert.True(t, f.manager.State().IsAuthenticated)
}

func TestSessionManagerConcurrentLoginsLastResolutionWins(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())

	slow := domain.Credentials{Email: "slow@b.co", Password: "pw"}
	fast := domain.Credentials{Email: "fast@b.co", Password: "pw"}
	release := make(chan struct{})
	started := make(chan struct{})

	f.client.EXPECT().Login(mock.Anything, slow).RunAndReturn(func(context.Context, domain.Credentials) (domain.AuthResult, error) {
		close(started)
		<-release
		return domain.AuthResult{User: domain.User{ID: "slow"}, Token: "slow-token"}, nil
	}).Once()
	f.client.EXPECT().Login(mock.Anything, fast).Return(domain.AuthResult{User: domain.User{ID: "fast"}, Token: "fast-token"}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.manager.Login(context.Background(), slow)
		done <- err
	}()
	<-started

	_, err := f.manager.Login(context.Background(), fast)
	require.NoError(t, err)
	assert.True(t, f.manager.State().IsLoading)

	close(release)
	require.NoError(t, <-done)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.User)
	assert.Equal(t, domain.UserID("slow"), state.User.ID)
	assert.Equal(t, "slow-token", storedToken(t, f.store))
}

func TestSessionManagerLoginBeforeInitSettlesLoading(t *testing.T) {
	f := newManagerFixture(t, "")

	creds := domain.Credentials{Email: "a@b.co", Password: "pw"}
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{User: domain.User{ID: "1"}, Token: "abc"}, nil).Once()

	_, err := f.manager.Login(context.Background(), creds)
	require.NoError(t, err)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsAuthenticated)

	// The startup check already ran as part of Login.
	f.manager.Init(context.Background())
	assert.False(t, f.manager.State().IsLoading)
}

func TestSessionManagerLoginBeforeInitDropsStaleCredentialFirst(t *testing.T) {
	f := newManagerFixture(t, "stale")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{}, &domain.AuthError{Message: "Token has expired"}).Once()

	creds := domain.Credentials{Email: "a@b.co", Password: "pw"}
	f.client.EXPECT().Login(mock.Anything, creds).Return(domain.AuthResult{User: domain.User{ID: "1"}, Token: "fresh"}, nil).Once()

	_, err := f.manager.Login(context.Background(), creds)
	require.NoError(t, err)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	assert.Equal(t, "fresh", storedToken(t, f.store))
}

func TestSessionManagerSignupBeforeInitSettlesLoading(t *testing.T) {
	f := newManagerFixture(t, "")
	f.client.EXPECT().Signup(mock.Anything, mock.Anything).Return(domain.AuthResult{User: domain.User{ID: "7"}, Token: "new"}, nil).Once()

	_, err := f.manager.Signup(context.Background(), domain.SignupRequest{Email: "j@d.co", FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsAuthenticated)
}

func TestSessionManagerRequestAgentBeforeInitVerifiesCredential(t *testing.T) {
	f := newManagerFixture(t, "abc")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{ID: "1", Username: "ab"}, nil).Once()

	request := domain.AgentRequest{FullName: "Jane", Email: "j@d.co", Agent: domain.CustomSolutionAgent, Requirements: "OCR"}
	f.client.EXPECT().RequestAgent(mock.Anything, request).Return(domain.AgentRequestReceipt{RequestID: "r-2"}, nil).Once()

	receipt, err := f.manager.RequestAgent(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "r-2", receipt.RequestID)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.User)
	assert.Equal(t, "ab", state.User.Username)
}

func TestSessionManagerRequestAgentBeforeInitWithStaleCredential(t *testing.T) {
	f := newManagerFixture(t, "stale")
	f.client.EXPECT().Profile(mock.Anything).Return(domain.User{}, &domain.AuthError{Message: "Token has expired"}).Once()

	_, err := f.manager.RequestAgent(context.Background(), domain.AgentRequest{Agent: "VisionAI Scanner"})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	state := f.manager.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, domain.MessageLoginRequired, state.Error)
}

func TestSessionManagerListenersEndOnFinalState(t *testing.T) {
	f := newManagerFixture(t, "")
	f.manager.Init(context.Background())
	f.client.EXPECT().Login(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, creds domain.Credentials) (domain.AuthResult, error) {
		return domain.AuthResult{User: domain.User{ID: domain.UserID(creds.Email)}, Token: creds.Email}, nil
	}).Times(8)

	var (
		mu   sync.Mutex
		last SessionState
	)
	f.manager.Subscribe(func(state SessionState) {
		mu.Lock()
		defer mu.Unlock()
		last = state
	})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.manager.Login(context.Background(), domain.Credentials{Email: fmt.Sprintf("user-%d", i)})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, f.manager.State(), last)
	assert.False(t, last.IsLoading)
}
