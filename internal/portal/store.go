package portal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionStore is the durable slot holding the bearer token between runs.
// It is the only cross-request shared state the controller owns.
type SessionStore interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
}

// FileStore persists the token in a single file, created with 0600.
type FileStore struct {
	path string
}

// NewFileStore builds a store at path. An empty path defaults to
// .sparksonic/token under the user home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".sparksonic", "token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Token reads the stored token, reporting whether one is present.
func (s *FileStore) Token() (string, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(raw))
	return token, token != ""
}

// SetToken writes the token to the durable slot.
func (s *FileStore) SetToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore is an in-memory SessionStore for tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token reads the stored token.
func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetToken stores the token.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
