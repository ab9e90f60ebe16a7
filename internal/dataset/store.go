// Package dataset holds uploaded tabular data in memory, keyed by
// dataset id. Frames are deliberately kept out of session persistence;
// this store is the single owner of the bulk payload.
package dataset

import (
	"sync"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// Store is a concurrency-safe keyed frame store. Reads of different keys
// may run concurrently; a put replaces any previous frame for the key.
type Store struct {
	mu     sync.RWMutex
	frames map[string]*domain.Frame
}

// NewStore creates an empty dataset store.
func NewStore() *Store {
	return &Store{frames: make(map[string]*domain.Frame)}
}

// Put stores a frame under the given dataset id, replacing any existing one.
func (s *Store) Put(id string, f *domain.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[id] = f
}

// Get returns the frame for the given id, or nil if absent.
func (s *Store) Get(id string) *domain.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames[id]
}

// Delete removes the frame for the given id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.frames, id)
}
