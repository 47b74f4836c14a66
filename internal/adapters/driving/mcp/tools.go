package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// QueryInput is the input schema for the query_catalog tool.
type QueryInput struct {
	Search   string `json:"search,omitempty" jsonschema:"free-text term matched against name, category and model year"`
	Market   string `json:"market,omitempty" jsonschema:"market state filter: All, Available, Vaulted, Auctioning or Pre-Order"`
	Year     string `json:"year,omitempty" jsonschema:"exact model year or All"`
	Category string `json:"category,omitempty" jsonschema:"exact category or All"`
	Origin   string `json:"origin,omitempty" jsonschema:"exact origin or All"`
	Sort     string `json:"sort,omitempty" jsonschema:"sort key: year (default), tier or price"`
}

// VehicleSummary is a compact vehicle listing.
type VehicleSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Tier        string `json:"tier"`
	Category    string `json:"category"`
	Origin      string `json:"origin"`
	Price       string `json:"price,omitempty"`
	MarketState string `json:"market_state,omitempty"`
}

// QueryOutput is the output schema for the query_catalog tool.
type QueryOutput struct {
	Vehicles []VehicleSummary `json:"vehicles"`
	Count    int              `json:"count"`
}

// FacetsOutput is the output schema for the list_facets tool.
type FacetsOutput struct {
	Years      []string `json:"years"`
	Categories []string `json:"categories"`
	Origins    []string `json:"origins"`
	Markets    []string `json:"markets"`
	SortKeys   []string `json:"sort_keys"`
}

// VehicleInput identifies a catalog vehicle.
type VehicleInput struct {
	VehicleID string `json:"vehicle_id" jsonschema:"catalog vehicle ID"`
}

// SocialInput is the input schema for the generate_social_campaign tool.
type SocialInput struct {
	VehicleID string `json:"vehicle_id" jsonschema:"catalog vehicle ID"`
	Goal      string `json:"goal" jsonschema:"campaign goal, e.g. Global Product Launch"`
}

// TuneInput is the input schema for the generate_performance_patch tool.
type TuneInput struct {
	VehicleID string `json:"vehicle_id" jsonschema:"catalog vehicle ID"`
	Objective string `json:"objective" jsonschema:"tuning objective, e.g. Hyper-Sonic Warp Stability"`
}

// ConceptInput is the input schema for the generate_asset_package tool.
type ConceptInput struct {
	Concept string `json:"concept" jsonschema:"free-form description of the asset to invent"`
}

// FinanceInput is the input schema for the generate_financial_synergy tool.
type FinanceInput struct {
	Sector string `json:"sector" jsonschema:"philanthropy sector, e.g. Healthcare"`
	Goal   string `json:"goal" jsonschema:"funding goal"`
}

// ProposalInput is the input schema for the generate_project_proposal tool.
type ProposalInput struct {
	Location  string `json:"location" jsonschema:"where the project takes place"`
	Challenge string `json:"challenge" jsonschema:"the problem to solve"`
}

// PatternInput is the input schema for the generate_global_pattern tool.
type PatternInput struct {
	Origin      string `json:"origin" jsonschema:"origin hub, e.g. NEO-MANILA"`
	Destination string `json:"destination" jsonschema:"destination hub, e.g. GENEVA"`
}

// VisualInput is the input schema for the generate_visual tool.
type VisualInput struct {
	VehicleID   string `json:"vehicle_id,omitempty" jsonschema:"catalog vehicle ID to render"`
	Description string `json:"description,omitempty" jsonschema:"free-form description to render instead of a vehicle"`
}

// registerTools registers the browsing tools, plus the generation tools
// when a generator is wired.
func (s *Server) registerTools() {
	addTool(s, "query_catalog", "Filter and sort the vehicle catalog", s.handleQuery)
	addTool(s, "list_facets", "List the values accepted by each query_catalog filter", s.handleFacets)

	if s.ports.Generation == nil {
		return
	}

	addTool(s, "generate_blueprint",
		"Generate a technical dossier and social ROI analysis for a vehicle", s.handleBlueprint)
	addTool(s, "generate_asset_package",
		"Invent a new luxury asset and write its sales package", s.handleAssetPackage)
	addTool(s, "generate_visual",
		"Render a vehicle or a description as an image", s.handleVisual)
	addTool(s, "generate_social_campaign",
		"Write omni-channel launch copy for a vehicle", s.handleSocial)
	addTool(s, "generate_performance_patch",
		"Tune a vehicle towards a mission objective", s.handleTune)
	addTool(s, "generate_financial_synergy",
		"Design a philanthropy funding roadmap", s.handleFinance)
	addTool(s, "generate_project_proposal",
		"Propose a community impact project", s.handleProposal)
	addTool(s, "generate_global_pattern",
		"Design a connectivity pattern between two network hubs", s.handlePattern)
}

func addTool[In, Out any](s *Server, name, description string, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(s.server, &mcp.Tool{Name: name, Description: description}, h)
	s.tools = append(s.tools, name)
}

// handleQuery handles the query_catalog tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	q := domain.DefaultQuery().
		WithSearch(input.Search).
		WithMarket(input.Market).
		WithYear(input.Year).
		WithCategory(input.Category).
		WithOrigin(input.Origin)

	if input.Sort != "" {
		key, err := domain.ParseSortKey(input.Sort)
		if err != nil {
			return nil, QueryOutput{}, err
		}
		q = q.WithSort(key)
	}

	vehicles, err := s.ports.Catalog.Query(ctx, q)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	output := QueryOutput{
		Vehicles: make([]VehicleSummary, len(vehicles)),
		Count:    len(vehicles),
	}
	for i, v := range vehicles {
		output.Vehicles[i] = summarise(v)
	}

	return nil, output, nil
}

func summarise(v *domain.Vehicle) VehicleSummary {
	return VehicleSummary{
		ID:          v.ID,
		Name:        v.Name,
		Year:        v.Year,
		Tier:        v.Tier.String(),
		Category:    v.Category.String(),
		Origin:      v.Origin,
		Price:       v.PriceLabel,
		MarketState: v.MarketState.String(),
	}
}

// handleFacets handles the list_facets tool invocation.
func (s *Server) handleFacets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FacetsOutput, error) {
	facets, err := s.ports.Catalog.Facets(ctx)
	if err != nil {
		return nil, FacetsOutput{}, err
	}

	sortKeys := make([]string, 0, len(domain.SortKeys()))
	for _, k := range domain.SortKeys() {
		sortKeys = append(sortKeys, k.String())
	}

	return nil, FacetsOutput{
		Years:      facets.Years,
		Categories: facets.Categories,
		Origins:    facets.Origins,
		Markets:    domain.MarketFacet(),
		SortKeys:   sortKeys,
	}, nil
}

func (s *Server) handleBlueprint(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VehicleInput,
) (*mcp.CallToolResult, domain.Blueprint, error) {
	bp, err := s.ports.Generation.Blueprint(ctx, input.VehicleID)
	return nil, deref(bp), err
}

func (s *Server) handleAssetPackage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConceptInput,
) (*mcp.CallToolResult, domain.AssetPackage, error) {
	pkg, err := s.ports.Generation.AssetPackage(ctx, input.Concept)
	return nil, deref(pkg), err
}

// handleVisual returns the rendered image as image content.
func (s *Server) handleVisual(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VisualInput,
) (*mcp.CallToolResult, any, error) {
	var (
		visual *domain.Visual
		err    error
	)
	if input.Description != "" {
		visual, err = s.ports.Generation.VisualFromDescription(ctx, input.Description)
	} else {
		visual, err = s.ports.Generation.Visual(ctx, input.VehicleID)
	}
	if err != nil {
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{
			Data:     visual.Data,
			MIMEType: visual.MIMEType,
		}},
	}, nil, nil
}

func (s *Server) handleSocial(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SocialInput,
) (*mcp.CallToolResult, domain.SocialCampaign, error) {
	campaign, err := s.ports.Generation.SocialCampaign(ctx, input.VehicleID, input.Goal)
	return nil, deref(campaign), err
}

func (s *Server) handleTune(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TuneInput,
) (*mcp.CallToolResult, domain.PerformancePatch, error) {
	patch, err := s.ports.Generation.PerformancePatch(ctx, input.VehicleID, input.Objective)
	return nil, deref(patch), err
}

func (s *Server) handleFinance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FinanceInput,
) (*mcp.CallToolResult, domain.FinancialSynergy, error) {
	plan, err := s.ports.Generation.FinancialSynergy(ctx, input.Sector, input.Goal)
	return nil, deref(plan), err
}

func (s *Server) handleProposal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProposalInput,
) (*mcp.CallToolResult, domain.ProjectProposal, error) {
	proposal, err := s.ports.Generation.ProjectProposal(ctx, input.Location, input.Challenge)
	return nil, deref(proposal), err
}

func (s *Server) handlePattern(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PatternInput,
) (*mcp.CallToolResult, domain.GlobalPattern, error) {
	pattern, err := s.ports.Generation.GlobalPattern(ctx, input.Origin, input.Destination)
	return nil, deref(pattern), err
}

// deref returns the zero value for nil so tool outputs always match their schema.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
