package gemini

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

// NewFromSettings creates a generator from application settings.
// Returns nil without error when no API key is configured; browsing does
// not need one.
func NewFromSettings(ctx context.Context, settings *domain.AISettings, prompts driven.PromptStore) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	gen, err := New(ctx, ConfigFromSettings(settings))
	if err != nil {
		return nil, err
	}
	if prompts != nil {
		gen.SetPromptStore(prompts)
	}
	return gen, nil
}
