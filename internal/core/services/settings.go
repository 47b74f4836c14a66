package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIKey            = "ai.api_key"
	keyTextModel         = "ai.text_model"
	keyProModel          = "ai.pro_model"
	keyImageModel        = "ai.image_model"
	keyRequestsPerSecond = "ai.requests_per_second"
	keyBurst             = "ai.burst"
	keyServerAddr        = "server.addr"
)

// APIKeyEnvVars are consulted in order; the first non-empty one overrides
// the configured API key.
var APIKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

// validateTimeout bounds the provider ping in ValidateAIConfig.
const validateTimeout = 15 * time.Second

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
// aiValidator may be nil, in which case ValidateAIConfig is a no-op.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	apiKey := s.configStore.GetString(keyAPIKey)
	if envKey := envAPIKey(); envKey != "" {
		apiKey = envKey
	}

	settings := &domain.AppSettings{
		AI: domain.AISettings{
			APIKey:            apiKey,
			TextModel:         s.getString(keyTextModel, defaults.AI.TextModel),
			ProModel:          s.getString(keyProModel, defaults.AI.ProModel),
			ImageModel:        s.getString(keyImageModel, defaults.AI.ImageModel),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, defaults.AI.RequestsPerSecond),
			Burst:             s.getInt(keyBurst, defaults.AI.Burst),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}

	return settings, nil
}

// Save persists application settings.
// A key that came from the environment is never written to disk.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings.AI.APIKey != "" && settings.AI.APIKey != envAPIKey() {
		if err := s.configStore.Set(keyAPIKey, settings.AI.APIKey); err != nil {
			return fmt.Errorf("save ai api_key: %w", err)
		}
	}

	values := []struct {
		key   string
		value any
	}{
		{keyTextModel, settings.AI.TextModel},
		{keyProModel, settings.AI.ProModel},
		{keyImageModel, settings.AI.ImageModel},
		{keyRequestsPerSecond, settings.AI.RequestsPerSecond},
		{keyBurst, settings.AI.Burst},
		{keyServerAddr, settings.Server.Addr},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetAPIKey stores the AI provider API key.
func (s *SettingsService) SetAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("%w: API key cannot be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyAPIKey, apiKey); err != nil {
		return fmt.Errorf("save ai api_key: %w", err)
	}
	return nil
}

// ClearAPIKey removes the stored API key. A key set in the environment
// still applies afterwards.
func (s *SettingsService) ClearAPIKey() error {
	if err := s.configStore.Delete(keyAPIKey); err != nil {
		return fmt.Errorf("clear ai api_key: %w", err)
	}
	return nil
}

// SetModels updates the text, pro and image models.
func (s *SettingsService) SetModels(text, pro, image string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if text = strings.TrimSpace(text); text != "" {
		settings.AI.TextModel = text
	}
	if pro = strings.TrimSpace(pro); pro != "" {
		settings.AI.ProModel = pro
	}
	if image = strings.TrimSpace(image); image != "" {
		settings.AI.ImageModel = image
	}

	return s.Save(settings)
}

// SetRateLimit updates client-side throttling.
func (s *SettingsService) SetRateLimit(requestsPerSecond float64, burst int) error {
	if requestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", domain.ErrInvalidInput)
	}
	if burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.AI.RequestsPerSecond = requestsPerSecond
	settings.AI.Burst = burst

	return s.Save(settings)
}

// SetServerAddr updates the HTTP listen address.
func (s *SettingsService) SetServerAddr(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("%w: server address cannot be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyServerAddr, addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	return nil
}

// Validate checks the settings are usable. A missing API key is not an
// error: browsing works without one.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.AI.TextModel == "" || settings.AI.ProModel == "" || settings.AI.ImageModel == "" {
		return fmt.Errorf("%w: every model must be set", domain.ErrInvalidInput)
	}
	if settings.AI.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", domain.ErrInvalidInput)
	}
	if settings.AI.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1", domain.ErrInvalidInput)
	}
	if settings.Server.Addr == "" {
		return fmt.Errorf("%w: server address cannot be empty", domain.ErrInvalidInput)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateAIConfig validates the current AI configuration by pinging the provider.
func (s *SettingsService) ValidateAIConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), validateTimeout)
	defer cancel()
	return s.aiValidator.ValidateAI(ctx, &settings.AI)
}

// ConfigPath returns the path of the backing config file.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func envAPIKey() string {
	for _, name := range APIKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
