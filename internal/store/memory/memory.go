// Package memory is an in-process store used in tests and as a fallback
// when no durable backend is configured.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store"
)

type MemoryStore struct {
	mu    sync.RWMutex
	state []byte
}

func NewMemoryStore() store.Store {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*registry.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil, nil
	}
	var state registry.State
	if err := json.Unmarshal(s.state, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *MemoryStore) Save(ctx context.Context, state registry.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = data
	return nil
}

func (s *MemoryStore) Close() error { return nil }
