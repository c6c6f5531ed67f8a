package store

import (
	"os"
	"path/filepath"
	"sync"
)

// Store is the interface for a persistent key-value store of JSON
// documents. Unlike cache, it has no TTL - data persists indefinitely.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// LocalStore is a file-based implementation of Store.
type LocalStore struct {
	dir string
	mu  sync.RWMutex
}

// NewLocal creates a new LocalStore with the specified directory.
func NewLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Get retrieves a value by key. Returns the value and true if found,
// or nil and false if not found.
func (s *LocalStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a value with the given key.
func (s *LocalStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.keyPath(key), value, 0644)
}

func (s *LocalStore) keyPath(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}
