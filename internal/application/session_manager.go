package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports"
)

const (
	fallbackLoginFailed          = "Login failed"
	fallbackSignupFailed         = "Signup failed"
	fallbackLogoutFailed         = "Logout failed"
	fallbackChangePasswordFailed = "Failed to change password"
	fallbackRequestFailed        = "Failed to submit request."
	fallbackProfileFailed        = "Session expired"

	messageChangePasswordLoginRequired = "You must be logged in to change your password."
	messageProfileLoginRequired        = "You must be logged in to view your profile."
)

// SessionState is a point-in-time copy of the session. Error is empty when
// the last operation succeeded.
type SessionState struct {
	User            *domain.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	VerifiedAt      time.Time
}

// SessionManager owns the authenticated identity of the CLI process and is
// the only writer of the credential store.
//
// Operations may run concurrently. Network calls happen outside the lock, so
// when two operations race the one that resolves last decides the state.
type SessionManager struct {
	client ports.AuthClient
	store  ports.CredentialStore
	clock  ports.Clock
	logger *slog.Logger

	initOnce sync.Once
	// notifyMu orders deliveries so listeners never see an older snapshot
	// after a newer one.
	notifyMu sync.Mutex

	mu         sync.RWMutex
	user       *domain.User
	verifiedAt time.Time
	lastError  string
	inflight   int
	listeners  map[int]func(SessionState)
	nextID     int
}

func NewSessionManager(client ports.AuthClient, store ports.CredentialStore, clock ports.Clock, logger *slog.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SessionManager{
		client: client,
		store:  store,
		clock:  clock,
		logger: logger,
		// The startup check counts as in flight until Init completes.
		inflight:  1,
		listeners: map[int]func(SessionState){},
	}
}

// Init validates a stored credential against the server. It runs once per
// manager; later calls return immediately. Every operation calls it first, so
// the check has always settled before an operation starts. A rejected
// credential is cleared silently. A canceled context leaves the credential in
// place.
func (m *SessionManager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		m.checkStoredCredential(ctx)
	})
}

func (m *SessionManager) checkStoredCredential(ctx context.Context) {
	if !m.store.HasActiveSession() {
		m.finish(nil)
		return
	}

	user, err := m.client.Profile(ctx)
	if err != nil {
		if ctx.Err() != nil {
			m.logger.Debug("startup profile check interrupted", "error", err)
			m.finish(nil)
			return
		}

		m.logger.Warn("stored credential rejected, signing out", "error", err)
		if clearErr := m.store.ClearCredential(context.WithoutCancel(ctx)); clearErr != nil {
			m.logger.Warn("clear rejected credential", "error", clearErr)
		}
		m.finish(func() { m.user = nil })
		return
	}

	now := m.clock.Now()
	m.finish(func() {
		m.user = &user
		m.verifiedAt = now
	})
}

// Teardown detaches all subscribers and drops the user snapshot.
func (m *SessionManager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = map[int]func(SessionState){}
	m.user = nil
}

func (m *SessionManager) State() SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Deliveries are serialized; fn may read State but must not start another
// operation synchronously.
func (m *SessionManager) Subscribe(fn func(SessionState)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *SessionManager) ClearError() {
	m.mu.Lock()
	m.lastError = ""
	m.mu.Unlock()

	m.notify()
}

// Login persists the returned token before the user becomes visible.
func (m *SessionManager) Login(ctx context.Context, credentials domain.Credentials) (domain.User, error) {
	m.Init(ctx)
	m.begin(true)

	result, err := m.client.Login(ctx, credentials)
	if err != nil {
		m.fail(err, fallbackLoginFailed)
		return domain.User{}, err
	}

	user, err := m.establish(ctx, result)
	if err != nil {
		m.fail(err, fallbackLoginFailed)
		return domain.User{}, err
	}

	m.logger.Info("logged in", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Signup derives the username from the name parts when none is given.
func (m *SessionManager) Signup(ctx context.Context, request domain.SignupRequest) (domain.User, error) {
	m.Init(ctx)
	m.begin(true)

	result, err := m.client.Signup(ctx, request.Payload())
	if err != nil {
		m.fail(err, fallbackSignupFailed)
		return domain.User{}, err
	}

	user, err := m.establish(ctx, result)
	if err != nil {
		m.fail(err, fallbackSignupFailed)
		return domain.User{}, err
	}

	m.logger.Info("signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (m *SessionManager) establish(ctx context.Context, result domain.AuthResult) (domain.User, error) {
	if err := m.store.SetCredential(ctx, result.Token); err != nil {
		return domain.User{}, fmt.Errorf("store session credential: %w", err)
	}

	user := result.User
	now := m.clock.Now()
	m.finish(func() {
		m.user = &user
		m.verifiedAt = now
	})

	return user, nil
}

// Logout always ends the local session. A failed remote call is recorded in
// the state but not returned; only a failure to clear the stored credential is.
// Without a credential there is nothing to revoke and the server is not called.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.Init(ctx)
	m.begin(false)

	var remoteErr error
	if m.store.HasActiveSession() {
		if _, remoteErr = m.client.Logout(ctx); remoteErr != nil {
			m.logger.Warn("remote logout failed", "error", remoteErr)
		}
	}

	clearErr := m.store.ClearCredential(context.WithoutCancel(ctx))

	m.mu.Lock()
	m.user = nil
	m.verifiedAt = time.Time{}
	if remoteErr != nil {
		m.lastError = failureMessage(remoteErr, fallbackLogoutFailed)
	}
	m.mu.Unlock()
	m.notify()

	if clearErr != nil {
		return fmt.Errorf("clear session credential: %w", clearErr)
	}

	m.logger.Info("logged out")
	return nil
}

// RefreshProfile re-reads the user from the server. A rejection is treated
// as an expired session and signs the user out locally.
func (m *SessionManager) RefreshProfile(ctx context.Context) (domain.User, error) {
	m.Init(ctx)
	m.begin(true)

	if err := m.requireSession(messageProfileLoginRequired); err != nil {
		return domain.User{}, err
	}

	user, err := m.client.Profile(ctx)
	if err != nil {
		if ctx.Err() != nil {
			m.fail(err, fallbackProfileFailed)
			return domain.User{}, err
		}

		m.logger.Warn("session expired", "error", err)
		if clearErr := m.store.ClearCredential(context.WithoutCancel(ctx)); clearErr != nil {
			m.logger.Warn("clear expired credential", "error", clearErr)
		}
		message := failureMessage(err, fallbackProfileFailed)
		m.finish(func() {
			m.user = nil
			m.verifiedAt = time.Time{}
			m.lastError = message
		})
		return domain.User{}, err
	}

	now := m.clock.Now()
	m.finish(func() {
		m.user = &user
		m.verifiedAt = now
	})

	return user, nil
}

func (m *SessionManager) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	m.Init(ctx)
	m.begin(true)

	if err := m.requireSession(messageChangePasswordLoginRequired); err != nil {
		return "", err
	}

	message, err := m.client.ChangePassword(ctx, currentPassword, newPassword)
	if err != nil {
		m.fail(err, fallbackChangePasswordFailed)
		return "", err
	}

	m.finish(nil)
	m.logger.Info("password changed")
	return message, nil
}

func (m *SessionManager) RequestAgent(ctx context.Context, request domain.AgentRequest) (domain.AgentRequestReceipt, error) {
	m.Init(ctx)
	m.begin(true)

	if err := m.requireSession(domain.MessageLoginRequired); err != nil {
		return domain.AgentRequestReceipt{}, err
	}

	receipt, err := m.client.RequestAgent(ctx, request)
	if err != nil {
		m.fail(err, fallbackRequestFailed)
		return domain.AgentRequestReceipt{}, err
	}

	m.finish(nil)
	m.logger.Info("agent request submitted", "agent", request.Agent, "request_id", receipt.RequestID)
	return receipt, nil
}

func (m *SessionManager) requireSession(message string) error {
	if m.store.HasActiveSession() {
		return nil
	}

	err := &domain.AuthError{Message: message, Err: domain.ErrNotAuthenticated}
	m.fail(err, message)
	return err
}

func (m *SessionManager) begin(loading bool) {
	m.mu.Lock()
	m.lastError = ""
	if loading {
		m.inflight++
	}
	m.mu.Unlock()

	m.notify()
}

func (m *SessionManager) finish(mutate func()) {
	m.mu.Lock()
	if mutate != nil {
		mutate()
	}
	if m.inflight > 0 {
		m.inflight--
	}
	m.mu.Unlock()

	m.notify()
}

func (m *SessionManager) fail(err error, fallback string) {
	message := failureMessage(err, fallback)
	m.finish(func() { m.lastError = message })
}

func (m *SessionManager) notify() {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.RLock()
	state := m.snapshotLocked()
	listeners := make([]func(SessionState), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (m *SessionManager) snapshotLocked() SessionState {
	state := SessionState{
		IsAuthenticated: m.store.HasActiveSession(),
		IsLoading:       m.inflight > 0,
		Error:           m.lastError,
		VerifiedAt:      m.verifiedAt,
	}
	if m.user != nil {
		user := *m.user
		state.User = &user
	}

	return state
}

func failureMessage(err error, fallback string) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		if authErr.Message != "" {
			return authErr.Message
		}
		return fallback
	}
	if err == nil || err.Error() == "" {
		return fallback
	}

	return err.Error()
}
