package gamemaster

import (
	"context"
	"sync"

	"colonisation/game"
	"colonisation/rules"
)

// MemoryStore keeps states in process memory. Saved states are copied so
// callers cannot alias them.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]game.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]game.State)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (game.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[id]
	if !ok {
		return game.State{}, rules.Missing(rules.CodeUnknownGame, "game %q does not exist", id)
	}
	return state.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, id string, state game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = state.Clone()
	return nil
}
