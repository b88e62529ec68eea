// Package credential holds the single bearer credential of the CLI session,
// mirrored between memory and a durable secret store.
package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports"
)

const DefaultKey = "token"

var errNilSecretStore = errors.New("credential secret store is nil")

type Store struct {
	secrets ports.SecretStore
	key     string

	mu    sync.RWMutex
	token string
	set   bool
}

var _ ports.CredentialStore = (*Store)(nil)

// Open reads the durable copy once. A missing entry yields an empty store.
func Open(ctx context.Context, secrets ports.SecretStore, key string) (*Store, error) {
	if secrets == nil {
		return nil, errNilSecretStore
	}
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}

	store := &Store{secrets: secrets, key: key}

	token, err := secrets.Get(ctx, key)
	switch {
	case err == nil:
		store.token = token
		store.set = true
	case errors.Is(err, domain.ErrSecretNotFound):
	default:
		return nil, fmt.Errorf("load stored credential: %w", err)
	}

	return store, nil
}

// SetCredential overwrites the durable copy first, then memory.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.secrets.Put(ctx, s.key, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.token = token
	s.set = true
	return nil
}

func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.set
}

// ClearCredential is idempotent. The in-memory copy is dropped even when the
// durable delete fails so the running process stops presenting the token.
func (s *Store) ClearCredential(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false

	if err := s.secrets.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete stored credential: %w", err)
	}

	return nil
}

func (s *Store) HasActiveSession() bool {
	_, ok := s.Credential()
	return ok
}
