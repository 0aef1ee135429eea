package draft

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and ephemeral sessions.
type Memory struct {
	mu sync.Mutex
	m  map[string]string

	// SetErr and RemoveErr, when non-nil, are returned by every Set or
	// Remove call. Used to exercise persistence-failure paths in tests.
	SetErr    error
	RemoveErr error

	writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(_ context.Context, key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.m[key] = payload
	s.writes++
	return nil
}

// Writes reports how many Set calls succeeded. Set runs on the
// autosave timer goroutine, so the count is read under the lock.
func (s *Memory) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.m, key)
	return nil
}
