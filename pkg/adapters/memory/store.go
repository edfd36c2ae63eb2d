package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Store implements ports.ProgramStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally pre-populated with
// program sources keyed by name.
func NewStore(programs map[string]string) *Store {
	data := make(map[string][]byte, len(programs))
	for k, v := range programs {
		data[k] = []byte(v)
	}
	return &Store{data: data}
}

// Save stores a copy of source under name.
func (s *Store) Save(ctx context.Context, name string, source []byte) error {
	if name == "" {
		return fmt.Errorf("program name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = append([]byte(nil), source...)
	return nil
}

// Load returns a copy of the stored source.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, name)
	}
	return append([]byte(nil), src...), nil
}

// Delete removes the program.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns all program names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for k := range s.data {
		names = append(names, k)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
