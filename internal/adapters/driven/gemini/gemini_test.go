package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

type recordedCall struct {
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

type fakeModels struct {
	mu    sync.Mutex
	calls []recordedCall
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prompt := ""
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		prompt = contents[0].Parts[0].Text
	}
	f.calls = append(f.calls, recordedCall{model: model, prompt: prompt, config: config})
	return f.resp, f.err
}

func (f *fakeModels) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

type mapPromptStore map[string]string

func (m mapPromptStore) Load(name string) (string, error) {
	p, ok := m[name]
	if !ok {
		return "", errors.New("not found")
	}
	return p, nil
}

func (m mapPromptStore) Reload() {}

func newTestGenerator(models *fakeModels) *Generator {
	return newGenerator(models, Config{APIKey: "test", RequestsPerSecond: 1000, Burst: 100})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewFromSettings_Unconfigured(t *testing.T) {
	gen, err := NewFromSettings(context.Background(), &domain.AISettings{}, nil)

	require.NoError(t, err)
	assert.Nil(t, gen)

	gen, err = NewFromSettings(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, gen)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	gen := newGenerator(&fakeModels{}, Config{APIKey: "k"})

	assert.Equal(t, domain.DefaultTextModel, gen.cfg.TextModel)
	assert.Equal(t, domain.DefaultProModel, gen.cfg.ProModel)
	assert.Equal(t, domain.DefaultImageModel, gen.cfg.ImageModel)
	assert.Equal(t, domain.DefaultBurst, gen.cfg.Burst)
	assert.Equal(t, domain.DefaultTextModel, gen.ModelName())
	assert.NoError(t, gen.Close())
}

func TestConfigFromSettings(t *testing.T) {
	settings := domain.DefaultAppSettings().AI
	settings.APIKey = "k"

	cfg := ConfigFromSettings(&settings)

	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, settings.ProModel, cfg.ProModel)
	assert.Equal(t, settings.Burst, cfg.Burst)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n{}\n ", want: `{}`},
		{name: "empty", in: "", want: `{}`},
		{name: "empty fence", in: "```json\n```", want: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}

func TestGenerator_Blueprint(t *testing.T) {
	models := &fakeModels{resp: textResponse("```json\n" + `{
		"title": "Obsidian Dossier",
		"technicalDetails": "Fusion core",
		"materials": ["Carbon", "Chrome"],
		"stages": [{"name": "Frame", "description": "Weld"}],
		"aiRecommendation": "Acquire"
	}` + "\n```")}
	gen := newTestGenerator(models)

	bp, err := gen.Blueprint(context.Background(), domain.BlueprintRequest{
		Name: "Apex", Category: "Hypercar", Origin: "Neo-Manila",
	})

	require.NoError(t, err)
	assert.Equal(t, "Obsidian Dossier", bp.Title)
	assert.Equal(t, []string{"Carbon", "Chrome"}, bp.Materials)
	require.Len(t, bp.Stages, 1)
	assert.Equal(t, "Frame", bp.Stages[0].Name)

	call := models.last()
	assert.Equal(t, domain.DefaultProModel, call.model)
	assert.Contains(t, call.prompt, `"Apex"`)
	assert.Contains(t, call.prompt, `"Hypercar"`)
	assert.Contains(t, call.prompt, `"Neo-Manila"`)
	require.NotNil(t, call.config)
	assert.Equal(t, "application/json", call.config.ResponseMIMEType)
	assert.Contains(t, call.config.ResponseSchema.Properties, "aiRecommendation")
}

func TestGenerator_ModelSelection(t *testing.T) {
	models := &fakeModels{resp: textResponse(`{}`)}
	gen := newTestGenerator(models)
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		model string
	}{
		{"package", func() error { _, err := gen.AssetPackage(ctx, "hover yacht"); return err }, domain.DefaultTextModel},
		{"social", func() error { _, err := gen.SocialCampaign(ctx, "Apex", "launch"); return err }, domain.DefaultTextModel},
		{"tune", func() error { _, err := gen.PerformancePatch(ctx, "Apex", "speed"); return err }, domain.DefaultTextModel},
		{"finance", func() error { _, err := gen.FinancialSynergy(ctx, "Health", "clinics"); return err }, domain.DefaultProModel},
		{"propose", func() error { _, err := gen.ProjectProposal(ctx, "Cebu", "floods"); return err }, domain.DefaultTextModel},
		{"pattern", func() error { _, err := gen.GlobalPattern(ctx, "GENEVA", "TOKYO-CITADEL"); return err }, domain.DefaultProModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.model, models.last().model)
		})
	}
}

func TestGenerator_GlobalPatternNodes(t *testing.T) {
	models := &fakeModels{resp: textResponse(`{
		"patternId": "PX-1",
		"originHub": "GENEVA",
		"destinationHub": "LONDON",
		"nodes": [{"name": "Relay", "coordinate": "LAT:45.0, LON:120.2", "strength": 87.5}]
	}`)}
	gen := newTestGenerator(models)

	pattern, err := gen.GlobalPattern(context.Background(), "GENEVA", "LONDON")

	require.NoError(t, err)
	require.Len(t, pattern.Nodes, 1)
	assert.InDelta(t, 87.5, pattern.Nodes[0].Strength, 1e-9)
}

func TestGenerator_MalformedJSON(t *testing.T) {
	gen := newTestGenerator(&fakeModels{resp: textResponse("not json")})

	_, err := gen.AssetPackage(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGenerator_UpstreamError(t *testing.T) {
	upstream := errors.New("quota exceeded")
	gen := newTestGenerator(&fakeModels{err: upstream})

	_, err := gen.ProjectProposal(context.Background(), "Cebu", "floods")

	assert.ErrorIs(t, err, upstream)
}

func TestGenerator_NilResponse(t *testing.T) {
	gen := newTestGenerator(&fakeModels{})

	_, err := gen.SocialCampaign(context.Background(), "Apex", "launch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGenerator_Visual(t *testing.T) {
	models := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}},
			}},
		}},
	}}
	gen := newTestGenerator(models)

	visual, err := gen.Visual(context.Background(), "chrome hypercar")

	require.NoError(t, err)
	assert.Equal(t, "image/png", visual.MIMEType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, visual.Data)

	call := models.last()
	assert.Equal(t, domain.DefaultImageModel, call.model)
	assert.Contains(t, call.prompt, "chrome hypercar")
	assert.Contains(t, call.prompt, "16:9")
	assert.Nil(t, call.config)
}

func TestGenerator_VisualWithoutImage(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"text only", textResponse("sorry")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(&fakeModels{resp: tt.resp})

			_, err := gen.Visual(context.Background(), "x")

			assert.ErrorIs(t, err, ErrNoImage)
		})
	}
}

func TestGenerator_PromptStore(t *testing.T) {
	models := &fakeModels{resp: textResponse(`{}`)}
	gen := newTestGenerator(models)
	gen.SetPromptStore(mapPromptStore{driven.PromptAssetPackage: "CUSTOM %s"})

	_, err := gen.AssetPackage(context.Background(), "sky barge")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM sky barge", models.last().prompt)

	// Names missing from the store fall back to defaults.
	_, err = gen.FinancialSynergy(context.Background(), "Education", "scholarships")
	require.NoError(t, err)
	assert.Contains(t, models.last().prompt, `"Education"`)
}

func TestGenerator_RateLimitHonoursContext(t *testing.T) {
	gen := newGenerator(&fakeModels{resp: textResponse(`{}`)}, Config{APIKey: "k", RequestsPerSecond: 0.001, Burst: 1})

	_, err := gen.AssetPackage(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.AssetPackage(ctx, "second")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestSchemas_RequireEveryProperty(t *testing.T) {
	schemas := map[string]*genai.Schema{
		"blueprint": blueprintSchema(),
		"package":   assetPackageSchema(),
		"social":    socialCampaignSchema(),
		"tune":      performancePatchSchema(),
		"finance":   financialSynergySchema(),
		"propose":   projectProposalSchema(),
		"pattern":   globalPatternSchema(),
	}

	for name, schema := range schemas {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, genai.TypeObject, schema.Type)
			assert.Len(t, schema.Required, len(schema.Properties))
			assert.IsIncreasing(t, schema.Required)
		})
	}
}

func TestConfigValidator_Unconfigured(t *testing.T) {
	v := NewConfigValidator()

	assert.NoError(t, v.ValidateAI(context.Background(), nil))
	assert.NoError(t, v.ValidateAI(context.Background(), &domain.AISettings{}))
}
