// Package gemini provides the generation gateway backed by the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
	"github.com/butch-garage/showroom/internal/logger"
)

// Ensure Generator implements the interfaces.
var (
	_ driven.Generator        = (*Generator)(nil)
	_ driven.PromptStoreAware = (*Generator)(nil)
)

// ErrNoImage is returned when the image model answers without inline image data.
var ErrNoImage = errors.New("gemini: no image data returned")

// Config holds configuration for the Gemini generator.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// TextModel serves short structured copy (default: domain.DefaultTextModel).
	TextModel string

	// ProModel serves long-form documents (default: domain.DefaultProModel).
	ProModel string

	// ImageModel renders visuals (default: domain.DefaultImageModel).
	ImageModel string

	// RequestsPerSecond is the sustained client-side rate.
	RequestsPerSecond float64

	// Burst is the limiter bucket size.
	Burst int
}

// ConfigFromSettings maps application settings onto a generator config.
func ConfigFromSettings(s *domain.AISettings) Config {
	return Config{
		APIKey:            s.APIKey,
		TextModel:         s.TextModel,
		ProModel:          s.ProModel,
		ImageModel:        s.ImageModel,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}
}

func (c *Config) applyDefaults() {
	if c.TextModel == "" {
		c.TextModel = domain.DefaultTextModel
	}
	if c.ProModel == "" {
		c.ProModel = domain.DefaultProModel
	}
	if c.ImageModel == "" {
		c.ImageModel = domain.DefaultImageModel
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if c.Burst < 1 {
		c.Burst = domain.DefaultBurst
	}
}

// contentGenerator is the slice of the genai client the generator uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator produces showroom content with Gemini models.
type Generator struct {
	models  contentGenerator
	cfg     Config
	limiter *rate.Limiter

	mu          sync.RWMutex
	promptStore driven.PromptStore
}

// New creates a Gemini generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return newGenerator(client.Models, cfg), nil
}

func newGenerator(models contentGenerator, cfg Config) *Generator {
	cfg.applyDefaults()
	return &Generator{
		models:  models,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the built-in default prompts are used.
func (g *Generator) SetPromptStore(store driven.PromptStore) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.promptStore = store
}

// ModelName returns the primary text model.
func (g *Generator) ModelName() string {
	return g.cfg.TextModel
}

// Close releases resources. The genai client holds no connections of its own.
func (g *Generator) Close() error {
	return nil
}

// Blueprint produces a technical dossier for an asset.
func (g *Generator) Blueprint(ctx context.Context, req domain.BlueprintRequest) (*domain.Blueprint, error) {
	prompt := g.prompt(driven.PromptBlueprint, req.Name, req.Category, req.Origin)
	return generateJSON[domain.Blueprint](ctx, g, g.cfg.ProModel, prompt, blueprintSchema())
}

// AssetPackage turns a concept into a sales package.
func (g *Generator) AssetPackage(ctx context.Context, concept string) (*domain.AssetPackage, error) {
	prompt := g.prompt(driven.PromptAssetPackage, concept)
	return generateJSON[domain.AssetPackage](ctx, g, g.cfg.TextModel, prompt, assetPackageSchema())
}

// SocialCampaign writes launch copy.
func (g *Generator) SocialCampaign(ctx context.Context, assetName, goal string) (*domain.SocialCampaign, error) {
	prompt := g.prompt(driven.PromptSocialCampaign, assetName, goal)
	return generateJSON[domain.SocialCampaign](ctx, g, g.cfg.TextModel, prompt, socialCampaignSchema())
}

// PerformancePatch tunes a vehicle towards an objective.
func (g *Generator) PerformancePatch(
	ctx context.Context,
	vehicleName, objective string,
) (*domain.PerformancePatch, error) {
	prompt := g.prompt(driven.PromptPerformancePatch, vehicleName, objective)
	return generateJSON[domain.PerformancePatch](ctx, g, g.cfg.TextModel, prompt, performancePatchSchema())
}

// FinancialSynergy plans philanthropy funding.
func (g *Generator) FinancialSynergy(ctx context.Context, sector, goal string) (*domain.FinancialSynergy, error) {
	prompt := g.prompt(driven.PromptFinancialSynergy, sector, goal)
	return generateJSON[domain.FinancialSynergy](ctx, g, g.cfg.ProModel, prompt, financialSynergySchema())
}

// ProjectProposal drafts a community impact project.
func (g *Generator) ProjectProposal(ctx context.Context, location, challenge string) (*domain.ProjectProposal, error) {
	prompt := g.prompt(driven.PromptProjectProposal, location, challenge)
	return generateJSON[domain.ProjectProposal](ctx, g, g.cfg.TextModel, prompt, projectProposalSchema())
}

// GlobalPattern links two hubs.
func (g *Generator) GlobalPattern(ctx context.Context, origin, destination string) (*domain.GlobalPattern, error) {
	prompt := g.prompt(driven.PromptGlobalPattern, origin, destination)
	return generateJSON[domain.GlobalPattern](ctx, g, g.cfg.ProModel, prompt, globalPatternSchema())
}

// Visual renders an image from a description.
func (g *Generator) Visual(ctx context.Context, description string) (*domain.Visual, error) {
	prompt := g.prompt(driven.PromptVisual, description)

	resp, err := g.call(ctx, g.cfg.ImageModel, prompt, nil)
	if err != nil {
		return nil, err
	}
	return extractImage(resp)
}

// generateJSON runs a structured request and decodes the reply into T.
func generateJSON[T any](
	ctx context.Context,
	g *Generator,
	model, prompt string,
	schema *genai.Schema,
) (*T, error) {
	resp, err := g.call(ctx, model, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &out, nil
}

func (g *Generator) call(
	ctx context.Context,
	model, prompt string,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("gemini: rate limit: %w", err)
	}

	logger.Debug("gemini: %s request (%d chars)", model, len(prompt))
	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini: %s: %w", model, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: %s: empty response", model)
	}
	return resp, nil
}

// prompt loads a template and fills in args.
func (g *Generator) prompt(name string, args ...any) string {
	return fmt.Sprintf(g.loadPrompt(name), args...)
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (g *Generator) loadPrompt(name string) string {
	g.mu.RLock()
	store := g.promptStore
	g.mu.RUnlock()

	if store != nil {
		if p, err := store.Load(name); err == nil {
			return p
		}
	}
	p, _ := driven.DefaultPrompt(name)
	return p
}

// cleanJSON strips Markdown code fences some models wrap JSON replies in.
// An empty reply decodes as an empty object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return "{}"
	}
	return text
}

// extractImage returns the first inline image part of the first candidate.
func extractImage(resp *genai.GenerateContentResponse) (*domain.Visual, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoImage
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return &domain.Visual{
			Data:     part.InlineData.Data,
			MIMEType: part.InlineData.MIMEType,
		}, nil
	}
	return nil, ErrNoImage
}
