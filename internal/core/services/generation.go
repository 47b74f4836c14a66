package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
	"github.com/butch-garage/showroom/internal/logger"
)

// Ensure GenerationService implements the interface.
var _ driving.GenerationService = (*GenerationService)(nil)

// GenerationService validates generation requests and forwards them to the
// configured generator. Identical requests in flight at the same time share
// one upstream call. Failures are never retried.
type GenerationService struct {
	catalog driven.CatalogStore

	mu        sync.RWMutex
	generator driven.Generator

	group singleflight.Group

	flightsMu sync.Mutex
	flights   map[string]*flight
}

// flight is the shared context of one in-flight request. It is cancelled
// once every caller waiting on it has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewGenerationService creates a new generation service.
// The generator may be nil; every call then fails with ErrGeneratorUnavailable.
func NewGenerationService(catalog driven.CatalogStore, generator driven.Generator) *GenerationService {
	return &GenerationService{
		catalog:   catalog,
		generator: generator,
		flights:   make(map[string]*flight),
	}
}

// SetGenerator swaps the generator, e.g. after the API key changes.
func (s *GenerationService) SetGenerator(g driven.Generator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generator = g
}

// Available reports whether a generator is configured.
func (s *GenerationService) Available() bool {
	return s.current() != nil
}

func (s *GenerationService) current() driven.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}

// Blueprint generates a technical dossier for a catalog vehicle.
func (s *GenerationService) Blueprint(ctx context.Context, vehicleID string) (*domain.Blueprint, error) {
	v, err := s.vehicle(domain.GenerationBlueprint, vehicleID)
	if err != nil {
		return nil, err
	}
	return s.CustomBlueprint(ctx, domain.BlueprintRequest{
		Name:     v.Name,
		Category: string(v.Category),
		Origin:   v.Origin,
	})
}

// CustomBlueprint generates a technical dossier for an arbitrary asset.
// An empty origin defaults to domain.DefaultBlueprintOrigin.
func (s *GenerationService) CustomBlueprint(ctx context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error) {
	kind := domain.GenerationBlueprint
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Origin = strings.TrimSpace(req.Origin)
	if err := required(kind, "name", req.Name); err != nil {
		return nil, err
	}
	if err := required(kind, "category", req.Category); err != nil {
		return nil, err
	}
	if req.Origin == "" {
		req.Origin = domain.DefaultBlueprintOrigin
	}

	return generate(ctx, s, kind, joinKey(req.Name, req.Category, req.Origin),
		func(ctx context.Context, g driven.Generator) (*domain.Blueprint, error) {
			return g.Blueprint(ctx, req)
		})
}

// AssetPackage turns a concept into a sales-ready package.
func (s *GenerationService) AssetPackage(ctx context.Context, concept string) (*domain.AssetPackage, error) {
	kind := domain.GenerationAssetPackage
	concept = strings.TrimSpace(concept)
	if err := required(kind, "concept", concept); err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(concept),
		func(ctx context.Context, g driven.Generator) (*domain.AssetPackage, error) {
			return g.AssetPackage(ctx, concept)
		})
}

// SynthesizeAsset builds a sales package and renders its description.
func (s *GenerationService) SynthesizeAsset(
	ctx context.Context, concept string,
) (*domain.AssetPackage, *domain.Visual, error) {
	pkg, err := s.AssetPackage(ctx, concept)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Package %q compiled, requesting visual", pkg.Name)

	description := pkg.Description
	if strings.TrimSpace(description) == "" {
		description = pkg.Name
	}
	visual, err := s.VisualFromDescription(ctx, description)
	if err != nil {
		return nil, nil, err
	}
	return pkg, visual, nil
}

// Visual renders a catalog vehicle from its description.
func (s *GenerationService) Visual(ctx context.Context, vehicleID string) (*domain.Visual, error) {
	v, err := s.vehicle(domain.GenerationVisual, vehicleID)
	if err != nil {
		return nil, err
	}
	description := v.Description
	if strings.TrimSpace(description) == "" {
		description = v.Name
	}
	return s.VisualFromDescription(ctx, description)
}

// VisualFromDescription renders an arbitrary description.
func (s *GenerationService) VisualFromDescription(ctx context.Context, description string) (*domain.Visual, error) {
	kind := domain.GenerationVisual
	description = strings.TrimSpace(description)
	if err := required(kind, "description", description); err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(description),
		func(ctx context.Context, g driven.Generator) (*domain.Visual, error) {
			return g.Visual(ctx, description)
		})
}

// SocialCampaign writes launch copy for a catalog vehicle.
func (s *GenerationService) SocialCampaign(ctx context.Context, vehicleID, goal string) (*domain.SocialCampaign, error) {
	kind := domain.GenerationSocialCampaign
	goal = strings.TrimSpace(goal)
	if err := required(kind, "goal", goal); err != nil {
		return nil, err
	}
	v, err := s.vehicle(kind, vehicleID)
	if err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(v.Name, goal),
		func(ctx context.Context, g driven.Generator) (*domain.SocialCampaign, error) {
			return g.SocialCampaign(ctx, v.Name, goal)
		})
}

// PerformancePatch tunes a catalog vehicle towards an objective.
func (s *GenerationService) PerformancePatch(
	ctx context.Context, vehicleID, objective string,
) (*domain.PerformancePatch, error) {
	kind := domain.GenerationPerformancePatch
	objective = strings.TrimSpace(objective)
	if err := required(kind, "objective", objective); err != nil {
		return nil, err
	}
	v, err := s.vehicle(kind, vehicleID)
	if err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(v.Name, objective),
		func(ctx context.Context, g driven.Generator) (*domain.PerformancePatch, error) {
			return g.PerformancePatch(ctx, v.Name, objective)
		})
}

// FinancialSynergy plans funding for a philanthropy sector.
func (s *GenerationService) FinancialSynergy(ctx context.Context, sector, goal string) (*domain.FinancialSynergy, error) {
	kind := domain.GenerationFinancialSynergy
	sector, goal = strings.TrimSpace(sector), strings.TrimSpace(goal)
	if err := required(kind, "sector", sector); err != nil {
		return nil, err
	}
	if err := required(kind, "goal", goal); err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(sector, goal),
		func(ctx context.Context, g driven.Generator) (*domain.FinancialSynergy, error) {
			return g.FinancialSynergy(ctx, sector, goal)
		})
}

// ProjectProposal drafts a community impact project.
func (s *GenerationService) ProjectProposal(
	ctx context.Context, location, challenge string,
) (*domain.ProjectProposal, error) {
	kind := domain.GenerationProjectProposal
	location, challenge = strings.TrimSpace(location), strings.TrimSpace(challenge)
	if err := required(kind, "location", location); err != nil {
		return nil, err
	}
	if err := required(kind, "challenge", challenge); err != nil {
		return nil, err
	}

	return generate(ctx, s, kind, joinKey(location, challenge),
		func(ctx context.Context, g driven.Generator) (*domain.ProjectProposal, error) {
			return g.ProjectProposal(ctx, location, challenge)
		})
}

// GlobalPattern links two distinct hubs.
func (s *GenerationService) GlobalPattern(ctx context.Context, origin, destination string) (*domain.GlobalPattern, error) {
	kind := domain.GenerationGlobalPattern
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if err := required(kind, "origin", origin); err != nil {
		return nil, err
	}
	if err := required(kind, "destination", destination); err != nil {
		return nil, err
	}
	if strings.EqualFold(origin, destination) {
		return nil, fmt.Errorf("%s: %w: hub cannot connect to itself", kind, domain.ErrInvalidInput)
	}

	return generate(ctx, s, kind, joinKey(origin, destination),
		func(ctx context.Context, g driven.Generator) (*domain.GlobalPattern, error) {
			return g.GlobalPattern(ctx, origin, destination)
		})
}

func (s *GenerationService) vehicle(kind domain.GenerationKind, id string) (*domain.Vehicle, error) {
	id = strings.TrimSpace(id)
	if err := required(kind, "vehicle id", id); err != nil {
		return nil, err
	}
	v, err := s.catalog.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return v, nil
}

// generate runs fn against the current generator, sharing the call with
// any identical request already in flight. Each caller returns on its own
// context; the shared call is cancelled only when all callers have left.
func generate[T any](
	ctx context.Context,
	s *GenerationService,
	kind domain.GenerationKind,
	requestKey string,
	fn func(context.Context, driven.Generator) (*T, error),
) (*T, error) {
	g := s.current()
	if g == nil {
		return nil, fmt.Errorf("%s: %w", kind, domain.ErrGeneratorUnavailable)
	}

	logger.Section("Generate " + kind.String())
	logger.Debug("Model: %s", g.ModelName())

	key := kind.String() + "\x00" + requestKey
	callCtx := s.join(ctx, key)
	defer s.leave(key)

	var res singleflight.Result
	select {
	case res = <-s.group.DoChan(key, func() (any, error) {
		return fn(callCtx, g)
	}):
	case <-ctx.Done():
		logger.Debug("%s request abandoned: %v", kind, ctx.Err())
		return nil, fmt.Errorf("%s: %w: %w", kind, domain.ErrGenerationFailed, ctx.Err())
	}

	if res.Shared {
		logger.Debug("Shared in-flight %s request", kind)
	}
	if res.Err != nil {
		logger.Warn("%s generation failed: %v", kind, res.Err)
		return nil, fmt.Errorf("%s: %w: %w", kind, domain.ErrGenerationFailed, res.Err)
	}

	result, ok := res.Val.(*T)
	if !ok || result == nil {
		return nil, fmt.Errorf("%s: %w: empty result", kind, domain.ErrGenerationFailed)
	}
	return result, nil
}

// join registers a caller for key and returns the context the shared call
// runs under. It outlives any single caller's cancellation.
func (s *GenerationService) join(ctx context.Context, key string) context.Context {
	s.flightsMu.Lock()
	defer s.flightsMu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel}
		s.flights[key] = f
	}
	f.waiters++
	return f.ctx
}

// leave drops a caller for key. The last one out cancels the shared call
// and makes sure later requests start a fresh one.
func (s *GenerationService) leave(key string) {
	s.flightsMu.Lock()
	defer s.flightsMu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		return
	}
	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	delete(s.flights, key)
	s.group.Forget(key)
}

func required(kind domain.GenerationKind, field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %w: %s is required", kind, domain.ErrInvalidInput, field)
	}
	return nil
}

func joinKey(parts ...string) string {
	return strings.Join(parts, "\x00")
}
