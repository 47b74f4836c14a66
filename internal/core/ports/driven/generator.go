package driven

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// Generator is the generative AI gateway. Each method takes a typed request
// and returns a typed record or a single error; callers must not assume any
// retry or latency behaviour beyond that.
type Generator interface {
	// Blueprint produces a technical dossier and social ROI analysis.
	Blueprint(ctx context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error)

	// AssetPackage turns a concept into a sales-ready package.
	AssetPackage(ctx context.Context, concept string) (*domain.AssetPackage, error)

	// Visual renders an image from a description.
	Visual(ctx context.Context, description string) (*domain.Visual, error)

	// SocialCampaign writes omni-channel launch copy for an asset.
	SocialCampaign(ctx context.Context, assetName, goal string) (*domain.SocialCampaign, error)

	// PerformancePatch tunes a vehicle towards an objective.
	PerformancePatch(ctx context.Context, vehicleName, objective string) (*domain.PerformancePatch, error)

	// FinancialSynergy plans funding for a philanthropy sector.
	FinancialSynergy(ctx context.Context, sector, goal string) (*domain.FinancialSynergy, error)

	// ProjectProposal drafts a community impact project for a location.
	ProjectProposal(ctx context.Context, location, challenge string) (*domain.ProjectProposal, error)

	// GlobalPattern links two hubs with a connectivity pattern.
	GlobalPattern(ctx context.Context, origin, destination string) (*domain.GlobalPattern, error)

	// ModelName returns the primary text model in use.
	ModelName() string

	// Close releases resources.
	Close() error
}
