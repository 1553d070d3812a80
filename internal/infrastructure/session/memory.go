// Package session provides the persistence backends for the client session:
// an in-memory store, a file store surviving process restarts, and a Redis
// store for shared deployments. Each backend keeps two slots — the bearer
// credential and the JSON-serialized profile.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// MemoryStore holds the session slots in process memory. The profile slot
// is kept serialized so round-trips behave exactly like the durable backends.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Profile() (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.profile) == 0 {
		return nil, nil
	}
	var p domain.Profile
	if err := json.Unmarshal(s.profile, &p); err != nil {
		return nil, fmt.Errorf("session: decode profile: %w", err)
	}
	return &p, nil
}

func (s *MemoryStore) SetProfile(profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile == nil {
		s.profile = nil
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}
	s.profile = raw
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}
