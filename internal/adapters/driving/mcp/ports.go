package mcp

import (
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides browsing.
	Catalog driving.CatalogService

	// Generation provides AI content. Optional; generation tools are only
	// registered when it is set.
	Generation driving.GenerationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
