package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// Test helper functions in settings.go

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// clearKeyEnv keeps a developer's exported key out of the assertions.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
}

func TestSettingsShow_Defaults(t *testing.T) {
	clearKeyEnv(t)
	setupTestServices(t, nil)

	out, err := run(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "API Key: (not set)")
	assert.Contains(t, out, "Text Model: "+domain.DefaultTextModel)
	assert.Contains(t, out, "not configured (browsing only)")
	assert.Contains(t, out, "Address: :8080")
	assert.Contains(t, out, "Config file: :memory:")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsSetKey_MasksOnShow(t *testing.T) {
	clearKeyEnv(t)
	setupTestServices(t, nil)

	_, err := run(t, "settings", "set-key", "AIza-test-key-123456")
	require.NoError(t, err)

	out, err := run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "API Key: AIza...3456")
	assert.NotContains(t, out, "AIza-test-key-123456")
	assert.Contains(t, out, "Status: configured")
}

func TestSettingsClearKey(t *testing.T) {
	clearKeyEnv(t)
	setupTestServices(t, nil)
	require.NoError(t, settingsService.SetAPIKey("AIza-test-key-123456"))

	out, err := run(t, "settings", "clear-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored API key removed.")
	assert.NotContains(t, out, "still set in the environment")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.AI.APIKey)
}

func TestSettingsClearKey_WarnsAboutEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "from-env")
	setupTestServices(t, nil)

	out, err := run(t, "settings", "clear-key")

	require.NoError(t, err)
	assert.Contains(t, out, "GEMINI_API_KEY is still set in the environment")
}

func TestSettingsModels_KeepsEmpty(t *testing.T) {
	clearKeyEnv(t)
	setupTestServices(t, nil)

	_, err := run(t, "settings", "models", "", "custom-pro")
	require.NoError(t, err)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTextModel, settings.AI.TextModel)
	assert.Equal(t, "custom-pro", settings.AI.ProModel)
	assert.Equal(t, domain.DefaultImageModel, settings.AI.ImageModel)
}

func TestSettingsRateLimit(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "settings", "rate-limit", "2.5", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Rate limit set to 2.5 req/s (burst 4).")
}

func TestSettingsRateLimit_Invalid(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "settings", "rate-limit", "fast", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid requests per second "fast"`)

	_, err = run(t, "settings", "rate-limit", "1", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsServerAddr(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "settings", "server-addr", "127.0.0.1:9000")
	require.NoError(t, err)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", settings.Server.Addr)
}

func TestSettingsValidate_NoValidator(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "settings", "validate")

	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestSettings_NoService(t *testing.T) {
	SetServices(nil, nil, nil)
	resetFlags()

	_, err := run(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
