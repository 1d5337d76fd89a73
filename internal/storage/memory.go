// Package storage provides in-memory result store implementations.
package storage

import (
	"sort"
	"sync"

	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/logger"
)

// Compile-time interface check.
var _ domain.ResultStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory result store keyed by source. Safe for
// concurrent access.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]*domain.Result
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory result store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	if log == nil {
		log = logger.Nop()
	}
	return &MemoryStore{
		results: make(map[string]*domain.Result),
		log:     log.Named("storage"),
	}
}

// Save stores a result. Overwrites any previous result for the same source.
func (s *MemoryStore) Save(result *domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving %s (digest=%.12s, problems=%d)", result.Source, result.Digest, len(result.Problems))
	s.results[result.Source] = result
	return nil
}

// Load retrieves the result for a source.
func (s *MemoryStore) Load(source string) (*domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[source]
	if !ok {
		s.log.Debug("result not found: %s", source)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Delete removes the result for a source.
func (s *MemoryStore) Delete(source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[source]; !ok {
		return domain.ErrNotFound
	}
	delete(s.results, source)
	s.log.Debug("deleted %s", source)
	return nil
}

// List returns every stored result sorted by source.
func (s *MemoryStore) List() ([]*domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Result, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	s.log.Debug("listing results, count=%d", len(out))
	return out, nil
}

// Unchanged reports whether the stored result for source was produced
// from a payload with the given digest.
func (s *MemoryStore) Unchanged(source, digest string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[source]
	return ok && r.Digest == digest
}
