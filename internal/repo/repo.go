// Package repo holds the in-memory house repository and the checks shared
// by every repository implementation.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"daysoflight/internal/houses"
	"daysoflight/internal/model"
	"daysoflight/internal/store"
)

// SeedKey is the store key holding the house seed.
const SeedKey = "houses"

var ErrNotFound = errors.New("house not found")

// Repository is a house collection that can be read and replaced as a whole.
type Repository interface {
	ListHouses(ctx context.Context) ([]model.House, error)
	GetHouse(ctx context.Context, id int64) (model.House, error)
	ReplaceHouses(ctx context.Context, hs []model.House, batchID string) error
}

// Memory is a Repository kept entirely in memory.
type Memory struct {
	mu     sync.RWMutex
	houses []model.House
}

// NewMemory creates a repository holding a copy of hs.
func NewMemory(hs []model.House) *Memory {
	m := &Memory{}
	m.set(hs)
	return m
}

func (m *Memory) set(hs []model.House) {
	cp := make([]model.House, len(hs))
	copy(cp, hs)
	sort.SliceStable(cp, func(i, j int) bool { return model.Less(cp[i], cp[j]) })
	m.houses = cp
}

// ListHouses returns all houses, active or not, in listing order.
func (m *Memory) ListHouses(ctx context.Context) ([]model.House, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.House, len(m.houses))
	copy(out, m.houses)
	return out, nil
}

func (m *Memory) GetHouse(ctx context.Context, id int64) (model.House, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.houses {
		if h.ID == id {
			return h, nil
		}
	}
	return model.House{}, ErrNotFound
}

// ReplaceHouses swaps the whole collection after validating it.
func (m *Memory) ReplaceHouses(ctx context.Context, hs []model.House, batchID string) error {
	if err := Validate(hs); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(hs)
	return nil
}

// Validate checks a house collection before it is stored.
func Validate(hs []model.House) error {
	seen := make(map[int64]bool, len(hs))
	for i, h := range hs {
		if h.ID <= 0 {
			return fmt.Errorf("house %d (%q): id must be positive", i, h.Name)
		}
		if seen[h.ID] {
			return fmt.Errorf("house %d (%q): duplicate id %d", i, h.Name, h.ID)
		}
		seen[h.ID] = true
		if h.Name == "" {
			return fmt.Errorf("house %d: name is required", i)
		}
	}
	return nil
}

// LoadSeed reads the house seed from s. When the store holds no seed the
// built-in default houses are returned and fromStore is false.
func LoadSeed(s store.Store) (hs []model.House, fromStore bool, err error) {
	data, ok := s.Get(SeedKey)
	if !ok {
		return houses.DefaultHouses(), false, nil
	}
	hs, err = DecodeSeed(data)
	if err != nil {
		return nil, false, err
	}
	return hs, true, nil
}

// SaveSeed validates hs and writes it to s as the house seed.
func SaveSeed(s store.Store, hs []model.House) error {
	if err := Validate(hs); err != nil {
		return err
	}
	data, err := json.MarshalIndent(hs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding seed: %w", err)
	}
	if err := s.Set(SeedKey, data); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}
	return nil
}
