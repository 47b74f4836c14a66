package driving

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// CatalogService provides catalog browsing to external actors.
// Every view layer calls Query whenever any query parameter changes.
type CatalogService interface {
	// List returns every vehicle in catalog order.
	List(ctx context.Context) ([]*domain.Vehicle, error)

	// Get returns a single vehicle by ID.
	// Returns domain.ErrNotFound if no such vehicle exists.
	Get(ctx context.Context, id string) (*domain.Vehicle, error)

	// Query filters and sorts the catalog.
	// The result is never nil; an empty result means nothing matched.
	Query(ctx context.Context, q domain.Query) ([]*domain.Vehicle, error)

	// Facets returns the selectable filter values derived from the catalog.
	Facets(ctx context.Context) (domain.Facets, error)

	// Stats returns the dashboard impact figures.
	Stats(ctx context.Context) ([]domain.ImpactStat, error)

	// Trend returns the simulated market week for a vehicle.
	Trend(ctx context.Context, id string) ([]domain.TrendPoint, error)
}
