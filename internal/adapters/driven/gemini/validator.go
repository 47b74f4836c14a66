package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks a Gemini configuration by looking up its text model.
type ConfigValidator struct{}

// NewConfigValidator creates a new AI config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateAI resolves the configured text model with the given key.
// Unconfigured settings have nothing to validate.
func (v *ConfigValidator) ValidateAI(ctx context.Context, cfg *domain.AISettings) error {
	if cfg == nil || !cfg.IsConfigured() {
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.TextModel
	if model == "" {
		model = domain.DefaultTextModel
	}
	if _, err := client.Models.Get(ctx, model, nil); err != nil {
		return fmt.Errorf("gemini: model %s unavailable: %w", model, err)
	}
	return nil
}
