package memory

import (
	"fmt"
	"sync"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// Vehicles keep their load order; lookups by ID go through an index.
type CatalogStore struct {
	mu       sync.RWMutex
	vehicles []*domain.Vehicle
	byID     map[string]*domain.Vehicle
}

// NewCatalogStore creates an empty in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		vehicles: []*domain.Vehicle{},
		byID:     make(map[string]*domain.Vehicle),
	}
}

// Load replaces the stored catalog. On a duplicate ID the existing
// catalog is left untouched.
func (s *CatalogStore) Load(vehicles []domain.Vehicle) error {
	list := make([]*domain.Vehicle, 0, len(vehicles))
	index := make(map[string]*domain.Vehicle, len(vehicles))
	for i := range vehicles {
		v := vehicles[i]
		if v.ID == "" {
			return fmt.Errorf("%w: vehicle at position %d has no id", domain.ErrInvalidInput, i)
		}
		if _, dup := index[v.ID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, v.ID)
		}
		index[v.ID] = &v
		list = append(list, &v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = list
	s.byID = index
	return nil
}

// All returns every vehicle in load order. The slice is shared; callers
// must not modify it.
func (s *CatalogStore) All() []*domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles
}

// Get retrieves a vehicle by ID.
func (s *CatalogStore) Get(id string) (*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %q: %w", id, domain.ErrNotFound)
	}
	return v, nil
}

// Count returns the number of vehicles.
func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}
