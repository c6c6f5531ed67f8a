package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"daysoflight/internal/model"
)

// Entry represents a cached house listing with metadata.
type Entry struct {
	Houses    []model.House `json:"houses"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// Cache provides disk-based caching of house listings read from a
// repository.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
	mu  sync.RWMutex
}

// New creates a new disk-based cache. A zero ttl disables caching.
func New(cacheDir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	return &Cache{
		dir: cacheDir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Get retrieves a cached listing if it exists and isn't expired.
func (c *Cache) Get(key string) ([]model.House, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.filePath(key))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if c.now().Sub(entry.FetchedAt) >= c.ttl {
		return nil, false
	}

	return entry.Houses, true
}

// Set stores a listing in the cache.
func (c *Cache) Set(key string, hs []model.House) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := Entry{
		Houses:    hs,
		FetchedAt: c.now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath(key), data, 0644)
}

// InvalidateAll removes all cached entries.
func (c *Cache) InvalidateAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
	return nil
}

func (c *Cache) filePath(key string) string {
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, key)
	return filepath.Join(c.dir, safe+".json")
}
