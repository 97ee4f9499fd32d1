package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and local development
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Save(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	copied.CompletedSteps = append([]Step(nil), state.CompletedSteps...)
	s.states[state.ID] = copied
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.states[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := stored
	copied.CompletedSteps = append([]Step(nil), stored.CompletedSteps...)
	return &copied, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, id)
	return nil
}
