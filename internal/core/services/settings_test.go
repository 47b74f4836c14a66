package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/adapters/driven/storage/memory"
	"github.com/butch-garage/showroom/internal/core/domain"
)

// clearAPIKeyEnv makes tests independent of the developer's shell.
func clearAPIKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range APIKeyEnvVars {
		t.Setenv(name, "")
	}
}

type stubValidator struct {
	got *domain.AISettings
	err error
}

func (v *stubValidator) ValidateAI(_ context.Context, cfg *domain.AISettings) error {
	v.got = cfg
	return v.err
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	clearAPIKeyEnv(t)
	service := NewSettingsService(memory.NewConfigStore(), nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.False(t, settings.AI.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set("ai.api_key", "stored-key")
	_ = store.Set("ai.text_model", "gemini-2.5-flash")
	_ = store.Set("ai.requests_per_second", 0.5)
	_ = store.Set("ai.burst", int64(1))
	_ = store.Set("server.addr", "127.0.0.1:9000")

	settings, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, "stored-key", settings.AI.APIKey)
	assert.Equal(t, "gemini-2.5-flash", settings.AI.TextModel)
	assert.Equal(t, domain.DefaultProModel, settings.AI.ProModel)
	assert.InDelta(t, 0.5, settings.AI.RequestsPerSecond, 1e-9)
	assert.Equal(t, 1, settings.AI.Burst)
	assert.Equal(t, "127.0.0.1:9000", settings.Server.Addr)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set("ai.requests_per_second", -1.0)
	_ = store.Set("ai.burst", 0)
	_ = store.Set("ai.text_model", 42)

	settings, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultRequestsPerSecond, settings.AI.RequestsPerSecond, 1e-9)
	assert.Equal(t, domain.DefaultBurst, settings.AI.Burst)
	assert.Equal(t, domain.DefaultTextModel, settings.AI.TextModel)
}

func TestSettingsService_Get_EnvOverridesConfig(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set("ai.api_key", "stored-key")
	service := NewSettingsService(store, nil)

	t.Setenv("API_KEY", "fallback-env-key")
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "fallback-env-key", settings.AI.APIKey)

	t.Setenv("GEMINI_API_KEY", "gemini-env-key")
	settings, err = service.Get()
	require.NoError(t, err)
	assert.Equal(t, "gemini-env-key", settings.AI.APIKey)
}

func TestSettingsService_Save_DoesNotPersistEnvKey(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "env-key")
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()
	require.NoError(t, err)
	require.NoError(t, service.Save(settings))

	_, ok := store.Get("ai.api_key")
	assert.False(t, ok)
}

func TestSettingsService_Save(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	settings.AI.APIKey = "k"
	settings.AI.ImageModel = "imagen-custom"
	settings.Server.Addr = ":9999"

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "k", store.GetString("ai.api_key"))
	assert.Equal(t, "imagen-custom", store.GetString("ai.image_model"))
	assert.Equal(t, ":9999", store.GetString("server.addr"))
	assert.Equal(t, domain.DefaultBurst, store.GetInt("ai.burst"))
}

func TestSettingsService_SetAPIKey(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetAPIKey("  new-key \n"))
	assert.Equal(t, "new-key", store.GetString("ai.api_key"))

	err := service.SetAPIKey("   ")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettingsService_ClearAPIKey(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStoreWith(map[string]any{"ai.api_key": "stored"})
	service := NewSettingsService(store, nil)

	require.NoError(t, service.ClearAPIKey())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.AI.IsConfigured())

	t.Setenv("GEMINI_API_KEY", "from-env")
	settings, err = service.Get()
	require.NoError(t, err)
	assert.Equal(t, "from-env", settings.AI.APIKey)
}

func TestSettingsService_SetModels_KeepsBlank(t *testing.T) {
	clearAPIKeyEnv(t)
	service := NewSettingsService(memory.NewConfigStore(), nil)

	require.NoError(t, service.SetModels("", "custom-pro", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTextModel, settings.AI.TextModel)
	assert.Equal(t, "custom-pro", settings.AI.ProModel)
	assert.Equal(t, domain.DefaultImageModel, settings.AI.ImageModel)
}

func TestSettingsService_SetRateLimit(t *testing.T) {
	clearAPIKeyEnv(t)
	service := NewSettingsService(memory.NewConfigStore(), nil)

	require.NoError(t, service.SetRateLimit(2.5, 4))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, settings.AI.RequestsPerSecond, 1e-9)
	assert.Equal(t, 4, settings.AI.Burst)

	assert.True(t, errors.Is(service.SetRateLimit(0, 4), domain.ErrInvalidInput))
	assert.True(t, errors.Is(service.SetRateLimit(1, 0), domain.ErrInvalidInput))
}

func TestSettingsService_SetServerAddr(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetServerAddr(":7070"))
	assert.Equal(t, ":7070", store.GetString("server.addr"))
	assert.True(t, errors.Is(service.SetServerAddr(""), domain.ErrInvalidInput))
}

func TestSettingsService_Validate(t *testing.T) {
	clearAPIKeyEnv(t)
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.NoError(t, service.Validate())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_ValidateAIConfig(t *testing.T) {
	clearAPIKeyEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set("ai.api_key", "k")

	assert.NoError(t, NewSettingsService(store, nil).ValidateAIConfig())

	validator := &stubValidator{}
	require.NoError(t, NewSettingsService(store, validator).ValidateAIConfig())
	require.NotNil(t, validator.got)
	assert.Equal(t, "k", validator.got.APIKey)

	validator.err = errors.New("unauthorised")
	assert.Error(t, NewSettingsService(store, validator).ValidateAIConfig())
}

func TestSettingsService_ConfigPath(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, ":memory:", service.ConfigPath())
}
