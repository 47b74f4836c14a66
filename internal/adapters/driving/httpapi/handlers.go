package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// maxBodyBytes caps generation request bodies.
const maxBodyBytes = 64 << 10

type handlers struct {
	catalog    driving.CatalogService
	generation driving.GenerationService
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"generation": h.generation != nil && h.generation.Available(),
	})
}

// listVehicles handles GET /vehicles. Missing parameters fall back to the default view.
func (h *handlers) listVehicles(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := domain.DefaultQuery().
		WithSearch(params.Get("search")).
		WithMarket(params.Get("market")).
		WithYear(params.Get("year")).
		WithCategory(params.Get("category")).
		WithOrigin(params.Get("origin"))

	if s := params.Get("sort"); s != "" {
		key, err := domain.ParseSortKey(s)
		if err != nil {
			writeError(w, r, err)
			return
		}
		q = q.WithSort(key)
	}

	vehicles, err := h.catalog.Query(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    q,
		"count":    len(vehicles),
		"vehicles": vehicles,
	})
}

func (h *handlers) getVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) getTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.catalog.Trend(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (h *handlers) getFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.catalog.Facets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"years":      facets.Years,
		"categories": facets.Categories,
		"origins":    facets.Origins,
		"markets":    domain.MarketFacet(),
		"sortKeys":   domain.SortKeys(),
	})
}

func (h *handlers) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *handlers) getPresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tuningObjectives": domain.TuningObjectives(),
		"hypeGoals":        domain.HypeGoals(),
		"networkHubs":      domain.NetworkHubs(),
		"stages":           domain.GenerationStages(),
	})
}

// requireGenerator rejects generation requests until a generator is configured.
func (h *handlers) requireGenerator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.generation == nil || !h.generation.Available() {
			writeError(w, r, fmt.Errorf("%w: no API key configured", domain.ErrGeneratorUnavailable))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// generateRequest is the union of every generation body.
type generateRequest struct {
	VehicleID   string `json:"vehicleId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Origin      string `json:"origin"`
	Concept     string `json:"concept"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
	Objective   string `json:"objective"`
	Sector      string `json:"sector"`
	Location    string `json:"location"`
	Challenge   string `json:"challenge"`
	Destination string `json:"destination"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*generateRequest, bool) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed body: %w", domain.ErrInvalidInput, err))
		return nil, false
	}
	return &req, true
}

// respond writes the result of a generation call.
func respond[T any](w http.ResponseWriter, r *http.Request, v *T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) generateBlueprint(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	if req.VehicleID != "" {
		bp, err := h.generation.Blueprint(r.Context(), req.VehicleID)
		respond(w, r, bp, err)
		return
	}
	bp, err := h.generation.CustomBlueprint(r.Context(), domain.BlueprintRequest{
		Name:     req.Name,
		Category: req.Category,
		Origin:   req.Origin,
	})
	respond(w, r, bp, err)
}

func (h *handlers) generatePackage(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	pkg, err := h.generation.AssetPackage(r.Context(), req.Concept)
	respond(w, r, pkg, err)
}

// visualResponse carries an image inline as a data URI.
type visualResponse struct {
	MIMEType string `json:"mimeType"`
	Image    string `json:"image"`
}

func newVisualResponse(v *domain.Visual) *visualResponse {
	return &visualResponse{MIMEType: v.MIMEType, Image: v.DataURI()}
}

func (h *handlers) generateSynthesis(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	pkg, visual, err := h.generation.SynthesizeAsset(r.Context(), req.Concept)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"package": pkg,
		"visual":  newVisualResponse(visual),
	})
}

func (h *handlers) generateVisual(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	var (
		visual *domain.Visual
		err    error
	)
	if req.Description != "" {
		visual, err = h.generation.VisualFromDescription(r.Context(), req.Description)
	} else {
		visual, err = h.generation.Visual(r.Context(), req.VehicleID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newVisualResponse(visual))
}

func (h *handlers) generateSocial(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	campaign, err := h.generation.SocialCampaign(r.Context(), req.VehicleID, req.Goal)
	respond(w, r, campaign, err)
}

func (h *handlers) generateTune(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	patch, err := h.generation.PerformancePatch(r.Context(), req.VehicleID, req.Objective)
	respond(w, r, patch, err)
}

func (h *handlers) generateFinance(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	plan, err := h.generation.FinancialSynergy(r.Context(), req.Sector, req.Goal)
	respond(w, r, plan, err)
}

func (h *handlers) generateProposal(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	proposal, err := h.generation.ProjectProposal(r.Context(), req.Location, req.Challenge)
	respond(w, r, proposal, err)
}

func (h *handlers) generatePattern(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	pattern, err := h.generation.GlobalPattern(r.Context(), req.Origin, req.Destination)
	respond(w, r, pattern, err)
}
