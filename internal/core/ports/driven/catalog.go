package driven

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// CatalogSource reads the raw vehicle catalog.
// Implementations include the embedded showroom seed and YAML files on disk.
type CatalogSource interface {
	// Load returns every vehicle in source order.
	Load(ctx context.Context) ([]domain.Vehicle, error)

	// Name identifies the source in logs, e.g. "embedded" or a file path.
	Name() string
}

// CatalogStore holds the loaded catalog. The catalog is immutable once
// loaded, so readers may share the returned slice but must not modify it.
type CatalogStore interface {
	// Load replaces the stored catalog with vehicles.
	// Returns domain.ErrDuplicateID if two vehicles share an ID.
	Load(vehicles []domain.Vehicle) error

	// All returns every vehicle in catalog order.
	All() []*domain.Vehicle

	// Get returns the vehicle with the given ID.
	// Returns domain.ErrNotFound if no such vehicle exists.
	Get(id string) (*domain.Vehicle, error)

	// Count returns the number of vehicles.
	Count() int
}
