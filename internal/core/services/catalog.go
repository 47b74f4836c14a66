package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
	"github.com/butch-garage/showroom/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves catalog queries from an in-memory store.
type CatalogService struct {
	store driven.CatalogStore

	mu     sync.Mutex
	facets *domain.Facets
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// LoadFrom replaces the catalog with the vehicles read from src.
func (s *CatalogService) LoadFrom(ctx context.Context, src driven.CatalogSource) error {
	logger.Section("Catalog Load")

	vehicles, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}
	if err := s.store.Load(vehicles); err != nil {
		return fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	s.mu.Lock()
	s.facets = nil
	s.mu.Unlock()

	logger.Debug("Loaded %d vehicles from %s", len(vehicles), src.Name())
	return nil
}

// List returns every vehicle in catalog order.
func (s *CatalogService) List(_ context.Context) ([]*domain.Vehicle, error) {
	return s.store.All(), nil
}

// Get returns a single vehicle by ID.
func (s *CatalogService) Get(_ context.Context, id string) (*domain.Vehicle, error) {
	return s.store.Get(id)
}

// Query filters and sorts the catalog.
func (s *CatalogService) Query(_ context.Context, q domain.Query) ([]*domain.Vehicle, error) {
	results := QueryVehicles(s.store.All(), q)
	logger.Debug("Query %+v matched %d of %d vehicles", q, len(results), s.store.Count())
	return results, nil
}

// Facets returns the filter values derived from the catalog.
// They are computed once per loaded catalog; callers get their own copy.
func (s *CatalogService) Facets(_ context.Context) (domain.Facets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.facets == nil {
		f := DeriveFacets(s.store.All())
		s.facets = &f
	}
	return s.facets.Clone(), nil
}

// Stats returns the dashboard impact figures.
func (s *CatalogService) Stats(_ context.Context) ([]domain.ImpactStat, error) {
	return domain.CommunityStats(), nil
}

// Trend returns the simulated market week for a vehicle.
func (s *CatalogService) Trend(_ context.Context, id string) ([]domain.TrendPoint, error) {
	v, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return domain.TrendSeries(v.ID), nil
}
