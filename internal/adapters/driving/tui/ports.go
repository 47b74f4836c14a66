// Package tui provides an interactive terminal showroom for the catalog.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Catalog provides browsing, facets and dashboard figures.
	Catalog driving.CatalogService

	// Generation produces AI content for a selected vehicle. Optional.
	Generation driving.GenerationService

	// Settings reports whether generation is configured. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	generation driving.GenerationService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Catalog:    catalog,
		Generation: generation,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
