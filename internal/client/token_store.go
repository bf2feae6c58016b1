package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errNoTokenFile = errors.New("token file is not configured")

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a [TokenStore] that keeps the token in a single
// file readable only by its owner. An empty path yields a store that never
// holds a token.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Load() (string, error) {
	if s.path == "" {
		return "", nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *fileTokenStore) Save(token string) error {
	if s.path == "" {
		return errNoTokenFile
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

func (s *fileTokenStore) Clear() error {
	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
