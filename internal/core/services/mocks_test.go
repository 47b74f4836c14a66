package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

// Ensure fakeGenerator implements the interface.
var _ driven.Generator = (*fakeGenerator)(nil)

// fakeGenerator records calls and returns canned records.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []string
	count atomic.Int32

	err     error
	release chan struct{}

	lastBlueprint domain.BlueprintRequest
	lastArgs      []string
}

func (f *fakeGenerator) record(ctx context.Context, name string, args ...string) error {
	f.count.Add(1)
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.lastArgs = args
	f.mu.Unlock()

	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeGenerator) Blueprint(ctx context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error) {
	f.mu.Lock()
	f.lastBlueprint = req
	f.mu.Unlock()
	if err := f.record(ctx, "blueprint", req.Name, req.Category, req.Origin); err != nil {
		return nil, err
	}
	return &domain.Blueprint{Title: req.Name + " Dossier"}, nil
}

func (f *fakeGenerator) AssetPackage(ctx context.Context, concept string) (*domain.AssetPackage, error) {
	if err := f.record(ctx, "package", concept); err != nil {
		return nil, err
	}
	return &domain.AssetPackage{Name: "Butch " + concept, Description: "A " + concept}, nil
}

func (f *fakeGenerator) Visual(ctx context.Context, description string) (*domain.Visual, error) {
	if err := f.record(ctx, "visual", description); err != nil {
		return nil, err
	}
	return &domain.Visual{Data: []byte(description), MIMEType: "image/png"}, nil
}

func (f *fakeGenerator) SocialCampaign(ctx context.Context, assetName, goal string) (*domain.SocialCampaign, error) {
	if err := f.record(ctx, "social", assetName, goal); err != nil {
		return nil, err
	}
	return &domain.SocialCampaign{CampaignName: assetName + ": " + goal}, nil
}

func (f *fakeGenerator) PerformancePatch(
	ctx context.Context, vehicleName, objective string,
) (*domain.PerformancePatch, error) {
	if err := f.record(ctx, "tune", vehicleName, objective); err != nil {
		return nil, err
	}
	return &domain.PerformancePatch{ObjectiveName: objective}, nil
}

func (f *fakeGenerator) FinancialSynergy(ctx context.Context, sector, goal string) (*domain.FinancialSynergy, error) {
	if err := f.record(ctx, "finance", sector, goal); err != nil {
		return nil, err
	}
	return &domain.FinancialSynergy{SectorName: sector, FinancialGoal: goal}, nil
}

func (f *fakeGenerator) ProjectProposal(ctx context.Context, location, challenge string) (*domain.ProjectProposal, error) {
	if err := f.record(ctx, "propose", location, challenge); err != nil {
		return nil, err
	}
	return &domain.ProjectProposal{Title: location}, nil
}

func (f *fakeGenerator) GlobalPattern(ctx context.Context, origin, destination string) (*domain.GlobalPattern, error) {
	if err := f.record(ctx, "pattern", origin, destination); err != nil {
		return nil, err
	}
	return &domain.GlobalPattern{OriginHub: origin, DestinationHub: destination}, nil
}

func (f *fakeGenerator) ModelName() string { return "fake-model" }

func (f *fakeGenerator) Close() error { return nil }

func (f *fakeGenerator) callNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
