// Package score persists the best score across runs.
package score

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "scores"
	recordProperty = "best"
)

// Backend is the key/value storage the store writes to.
// *gdata.Manager satisfies it.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Record is the persisted best score.
type Record struct {
	Best    int       `yaml:"best"`
	Updated time.Time `yaml:"updated"`
}

// Store keeps the best score in memory and mirrors it to a backend.
// A nil backend makes it memory-only. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend Backend
	record  Record
}

// Open opens the platform data directory for appName. If that fails the
// returned store is memory-only and the error says why.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open score storage: %w", err)
	}

	s := NewStore(manager)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// NewStore creates a store over backend. Call Load to read the saved record.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads the saved record. A missing record is not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil || !s.backend.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.backend.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal best score: %w", err)
	}
	s.record = rec
	return nil
}

// Best returns the best score seen so far.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Best
}

// Submit records a finished game's score. It returns the best score after
// the submission and whether this score set it. The in-memory best is
// updated even when saving fails.
func (s *Store) Submit(score int) (best int, improved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.record.Best {
		return s.record.Best, false, nil
	}

	s.record = Record{Best: score, Updated: time.Now().UTC()}
	if s.backend == nil {
		return score, true, nil
	}

	data, err := yaml.Marshal(s.record)
	if err != nil {
		return score, true, fmt.Errorf("failed to marshal best score: %w", err)
	}
	if err := s.backend.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return score, true, fmt.Errorf("failed to save best score: %w", err)
	}
	return score, true, nil
}
