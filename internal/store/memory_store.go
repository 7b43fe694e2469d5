package store

import (
	"sort"
	"sync"
	"time"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// MemoryAgentStore is an in-memory AgentStore for tests and ephemeral runs.
type MemoryAgentStore struct {
	mu     sync.RWMutex
	agents map[string]*SavedAgent
}

// NewMemoryAgentStore returns an empty in-memory store.
func NewMemoryAgentStore() *MemoryAgentStore {
	return &MemoryAgentStore{agents: make(map[string]*SavedAgent)}
}

func (s *MemoryAgentStore) Load(key string) (*SavedAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	saved, ok := s.agents[key]
	if !ok {
		return nil, ErrNotFound
	}
	return s.snapshot(saved), nil
}

func (s *MemoryAgentStore) Save(key string, profile domain.AgentProfile, transcript []domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	created := now
	if prev, ok := s.agents[key]; ok {
		created = prev.CreatedAt
	}
	turns := make([]domain.Turn, len(transcript))
	copy(turns, transcript)
	s.agents[key] = &SavedAgent{
		SessionKey: key,
		Profile:    profile.Clone(),
		Transcript: turns,
		CreatedAt:  created,
		UpdatedAt:  now,
	}
	return nil
}

func (s *MemoryAgentStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, key)
	return nil
}

func (s *MemoryAgentStore) List() ([]*SavedAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agents := make([]*SavedAgent, 0, len(s.agents))
	for _, saved := range s.agents {
		agents = append(agents, s.snapshot(saved))
	}
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].UpdatedAt.After(agents[j].UpdatedAt)
	})
	return agents, nil
}

func (s *MemoryAgentStore) snapshot(saved *SavedAgent) *SavedAgent {
	turns := make([]domain.Turn, len(saved.Transcript))
	copy(turns, saved.Transcript)
	return &SavedAgent{
		SessionKey: saved.SessionKey,
		Profile:    saved.Profile.Clone(),
		Transcript: turns,
		CreatedAt:  saved.CreatedAt,
		UpdatedAt:  saved.UpdatedAt,
	}
}
