package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// DefaultRequestTimeout bounds a single request, generation included.
const DefaultRequestTimeout = 2 * time.Minute

// Ports aggregates the driving ports the API serves.
type Ports struct {
	// Catalog provides browsing. Required.
	Catalog driving.CatalogService

	// Generation provides AI content. Optional; without it every
	// generation endpoint answers 503.
	Generation driving.GenerationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

// NewRouter creates the API router with all routes configured.
func NewRouter(ports *Ports) (http.Handler, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	h := &handlers{catalog: ports.Catalog, generation: ports.Generation}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(DefaultRequestTimeout))

	r.Get("/health", h.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicles", h.listVehicles)
		r.Get("/vehicles/{id}", h.getVehicle)
		r.Get("/vehicles/{id}/trend", h.getTrend)
		r.Get("/facets", h.getFacets)
		r.Get("/stats", h.getStats)
		r.Get("/presets", h.getPresets)

		r.Route("/generate", func(r chi.Router) {
			r.Use(h.requireGenerator)
			r.Post("/blueprint", h.generateBlueprint)
			r.Post("/package", h.generatePackage)
			r.Post("/synthesize", h.generateSynthesis)
			r.Post("/visual", h.generateVisual)
			r.Post("/social", h.generateSocial)
			r.Post("/tune", h.generateTune)
			r.Post("/finance", h.generateFinance)
			r.Post("/propose", h.generateProposal)
			r.Post("/pattern", h.generatePattern)
		})
	})

	return r, nil
}
