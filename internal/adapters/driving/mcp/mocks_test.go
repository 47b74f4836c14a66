package mcp

import (
	"context"
	"fmt"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	vehicles  []*domain.Vehicle
	facets    domain.Facets
	lastQuery domain.Query
	err       error
}

func (m *mockCatalogService) List(_ context.Context) ([]*domain.Vehicle, error) {
	return m.vehicles, m.err
}

func (m *mockCatalogService) Get(_ context.Context, id string) (*domain.Vehicle, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, v := range m.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, id)
}

func (m *mockCatalogService) Query(_ context.Context, q domain.Query) ([]*domain.Vehicle, error) {
	m.lastQuery = q
	return m.vehicles, m.err
}

func (m *mockCatalogService) Facets(_ context.Context) (domain.Facets, error) {
	return m.facets, m.err
}

func (m *mockCatalogService) Stats(_ context.Context) ([]domain.ImpactStat, error) {
	return domain.CommunityStats(), m.err
}

func (m *mockCatalogService) Trend(_ context.Context, id string) ([]domain.TrendPoint, error) {
	return domain.TrendSeries(id), m.err
}

// mockGenerationService is a mock implementation of driving.GenerationService.
type mockGenerationService struct {
	lastArgs []string
	visual   *domain.Visual
	err      error
}

func (m *mockGenerationService) record(args ...string) {
	m.lastArgs = args
}

func (m *mockGenerationService) Available() bool { return true }

func (m *mockGenerationService) Blueprint(_ context.Context, id string) (*domain.Blueprint, error) {
	m.record(id)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Blueprint{Title: "Dossier " + id}, nil
}

func (m *mockGenerationService) CustomBlueprint(_ context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error) {
	m.record(req.Name, req.Category, req.Origin)
	return &domain.Blueprint{Title: req.Name}, m.err
}

func (m *mockGenerationService) AssetPackage(_ context.Context, concept string) (*domain.AssetPackage, error) {
	m.record(concept)
	return &domain.AssetPackage{Name: concept}, m.err
}

func (m *mockGenerationService) SynthesizeAsset(
	_ context.Context,
	concept string,
) (*domain.AssetPackage, *domain.Visual, error) {
	m.record(concept)
	return &domain.AssetPackage{Name: concept}, m.visual, m.err
}

func (m *mockGenerationService) Visual(_ context.Context, id string) (*domain.Visual, error) {
	m.record(id)
	return m.visual, m.err
}

func (m *mockGenerationService) VisualFromDescription(_ context.Context, desc string) (*domain.Visual, error) {
	m.record(desc)
	return m.visual, m.err
}

func (m *mockGenerationService) SocialCampaign(_ context.Context, id, goal string) (*domain.SocialCampaign, error) {
	m.record(id, goal)
	return &domain.SocialCampaign{CampaignName: goal}, m.err
}

func (m *mockGenerationService) PerformancePatch(
	_ context.Context,
	id, objective string,
) (*domain.PerformancePatch, error) {
	m.record(id, objective)
	return &domain.PerformancePatch{ObjectiveName: objective}, m.err
}

func (m *mockGenerationService) FinancialSynergy(_ context.Context, sector, goal string) (*domain.FinancialSynergy, error) {
	m.record(sector, goal)
	return &domain.FinancialSynergy{SectorName: sector}, m.err
}

func (m *mockGenerationService) ProjectProposal(
	_ context.Context,
	location, challenge string,
) (*domain.ProjectProposal, error) {
	m.record(location, challenge)
	return &domain.ProjectProposal{Title: location}, m.err
}

func (m *mockGenerationService) GlobalPattern(_ context.Context, origin, destination string) (*domain.GlobalPattern, error) {
	m.record(origin, destination)
	return &domain.GlobalPattern{OriginHub: origin, DestinationHub: destination}, m.err
}

func sampleVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{
			ID: "1", Name: "Obsidian Apex", Year: 2055, Tier: domain.TierSovereign,
			Category: domain.CategorySupercar, Origin: "Neo-Manila",
			PriceLabel: "120M BUX", MarketState: domain.MarketAvailable,
		},
		{
			ID: "2", Name: "Aurora Lifeline", Year: 2050, Tier: domain.TierHumanitarian,
			Category: domain.CategoryHelicopter, Origin: "Geneva",
		},
	}
}
