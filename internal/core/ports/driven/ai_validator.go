package driven

import (
	"context"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// AIConfigValidator validates AI provider configurations.
// Implementations verify that configurations are valid by testing connectivity
// to the underlying AI service.
type AIConfigValidator interface {
	// ValidateAI pings the provider with the given settings.
	// Returns nil if configuration is valid or not configured.
	ValidateAI(ctx context.Context, config *domain.AISettings) error
}
