package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// FileStore persists the session slots as a small JSON file, the terminal
// analogue of browser local storage: it survives restarts within the same
// user account. The file is written with 0600 permissions since it holds
// a live credential.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileState struct {
	Token   string          `json:"token,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.read()
	if err != nil {
		return "", err
	}
	return state.Token, nil
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(state *fileState) {
		state.Token = token
	})
}

func (s *FileStore) Profile() (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(state.Profile) == 0 {
		return nil, nil
	}
	var p domain.Profile
	if err := json.Unmarshal(state.Profile, &p); err != nil {
		return nil, fmt.Errorf("session: decode profile: %w", err)
	}
	return &p, nil
}

func (s *FileStore) SetProfile(profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var raw json.RawMessage
	if profile != nil {
		encoded, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("session: encode profile: %w", err)
		}
		raw = encoded
	}
	return s.update(func(state *fileState) {
		state.Profile = raw
	})
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *FileStore) read() (*fileState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &fileState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", s.path, err)
	}
	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt session file is treated as logged out rather than
		// wedging every command.
		return &fileState{}, nil
	}
	return &state, nil
}

func (s *FileStore) update(mutate func(*fileState)) error {
	state, err := s.read()
	if err != nil {
		return err
	}
	mutate(state)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}
