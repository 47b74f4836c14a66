package driving

import "github.com/butch-garage/showroom/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// Environment variables take precedence over the config file.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetAPIKey stores the AI provider API key.
	SetAPIKey(apiKey string) error

	// ClearAPIKey removes the stored API key.
	ClearAPIKey() error

	// SetModels updates the text, pro and image models.
	// Empty values keep the current model.
	SetModels(text, pro, image string) error

	// SetRateLimit updates client-side throttling.
	SetRateLimit(requestsPerSecond float64, burst int) error

	// SetServerAddr updates the HTTP listen address.
	SetServerAddr(addr string) error

	// Validate checks the settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateAIConfig validates the AI configuration by pinging the provider.
	ValidateAIConfig() error

	// ConfigPath returns the path of the backing config file.
	ConfigPath() string
}
