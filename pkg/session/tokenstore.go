package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenNamespace is the fixed key the bearer token is persisted under,
// the durable-storage analog of the browser's localStorage entry.
const TokenNamespace = "kinea_token"

// TokenStore persists the bearer token across restarts. Only the
// session store writes it.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file named after
// TokenNamespace.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore stores the token under dir, creating it if needed.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create token dir: %w", err)
	}
	return &FileTokenStore{path: filepath.Join(dir, TokenNamespace)}, nil
}

// DefaultTokenStore places the token under the user config directory.
func DefaultTokenStore() (*FileTokenStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("user config dir: %w", err)
	}
	return NewFileTokenStore(filepath.Join(base, "kinea"))
}

func (s *FileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
