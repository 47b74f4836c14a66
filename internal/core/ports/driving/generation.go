package driving

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// GenerationService provides AI generated content to external actors.
// Every call either returns a record or a single error wrapping
// domain.ErrInvalidInput, domain.ErrNotFound, domain.ErrGeneratorUnavailable
// or domain.ErrGenerationFailed.
type GenerationService interface {
	// Available reports whether a generator is configured.
	Available() bool

	// Blueprint generates a technical dossier for a catalog vehicle.
	Blueprint(ctx context.Context, vehicleID string) (*domain.Blueprint, error)

	// CustomBlueprint generates a technical dossier for an arbitrary asset.
	CustomBlueprint(ctx context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error)

	// AssetPackage turns a concept into a sales-ready package.
	AssetPackage(ctx context.Context, concept string) (*domain.AssetPackage, error)

	// SynthesizeAsset builds a sales package for a concept and then renders
	// the package description. Either step failing fails the whole call.
	SynthesizeAsset(ctx context.Context, concept string) (*domain.AssetPackage, *domain.Visual, error)

	// Visual renders a catalog vehicle.
	Visual(ctx context.Context, vehicleID string) (*domain.Visual, error)

	// VisualFromDescription renders an arbitrary description.
	VisualFromDescription(ctx context.Context, description string) (*domain.Visual, error)

	// SocialCampaign writes launch copy for a catalog vehicle.
	SocialCampaign(ctx context.Context, vehicleID, goal string) (*domain.SocialCampaign, error)

	// PerformancePatch tunes a catalog vehicle towards an objective.
	PerformancePatch(ctx context.Context, vehicleID, objective string) (*domain.PerformancePatch, error)

	// FinancialSynergy plans funding for a philanthropy sector.
	FinancialSynergy(ctx context.Context, sector, goal string) (*domain.FinancialSynergy, error)

	// ProjectProposal drafts a community impact project.
	ProjectProposal(ctx context.Context, location, challenge string) (*domain.ProjectProposal, error)

	// GlobalPattern links two hubs.
	GlobalPattern(ctx context.Context, origin, destination string) (*domain.GlobalPattern, error)
}
