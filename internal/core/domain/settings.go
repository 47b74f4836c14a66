package domain

// Default generation settings.
const (
	// DefaultTextModel handles fast copywriting requests.
	DefaultTextModel = "gemini-3-flash-preview"

	// DefaultProModel handles long-form dossiers and roadmaps.
	DefaultProModel = "gemini-3-pro-preview"

	// DefaultImageModel renders vehicle visuals.
	DefaultImageModel = "gemini-2.5-flash-image"

	// DefaultRequestsPerSecond throttles calls to the AI provider.
	DefaultRequestsPerSecond = 1.0

	// DefaultBurst is the number of requests allowed back to back.
	DefaultBurst = 3

	// DefaultServerAddr is the listen address for the HTTP API.
	DefaultServerAddr = ":8080"
)

// AISettings holds generative AI provider configuration.
type AISettings struct {
	// APIKey authenticates against the provider.
	APIKey string

	// TextModel is used for short structured copy.
	TextModel string

	// ProModel is used for long-form structured documents.
	ProModel string

	// ImageModel is used for visuals.
	ImageModel string

	// RequestsPerSecond is the client-side rate limit.
	RequestsPerSecond float64

	// Burst is the rate limiter bucket size.
	Burst int
}

// IsConfigured returns true if generation can be attempted.
func (a AISettings) IsConfigured() bool {
	return a.APIKey != ""
}

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// AI holds generative AI settings.
	AI AISettings

	// Server holds HTTP API settings.
	Server ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty; generation stays disabled until one is set.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		AI: AISettings{
			TextModel:         DefaultTextModel,
			ProModel:          DefaultProModel,
			ImageModel:        DefaultImageModel,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
	}
}
