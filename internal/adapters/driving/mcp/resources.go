package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/butch-garage/showroom/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for showroom resources.
	uriScheme = "showroom://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "vehicles",
		Name:        "vehicles",
		Description: "Every catalog vehicle in catalog order",
		MIMEType:    "application/json",
	}, s.handleVehiclesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Community impact figures",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "vehicles/{vehicleId}",
		Name:        "vehicle",
		Description: "A single vehicle with its simulated market week",
		MIMEType:    "application/json",
	}, s.handleVehicleResource)
}

// handleVehiclesResource returns a summary of every vehicle.
func (s *Server) handleVehiclesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	vehicles, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}

	infos := make([]VehicleSummary, len(vehicles))
	for i, v := range vehicles {
		infos[i] = summarise(v)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleStatsResource returns the dashboard figures.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Catalog.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting stats: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

// handleVehicleResource returns one vehicle and its trend.
func (s *Server) handleVehicleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractVehicleID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	v, err := s.ports.Catalog.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	trend, err := s.ports.Catalog.Trend(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting trend: %w", err)
	}

	return jsonResource(req.Params.URI, struct {
		*domain.Vehicle
		Trend []domain.TrendPoint `json:"trend"`
	}{v, trend})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractVehicleID extracts the vehicle ID from a URI like showroom://vehicles/{vehicleId}.
func extractVehicleID(uri string) string {
	const prefix = uriScheme + "vehicles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
