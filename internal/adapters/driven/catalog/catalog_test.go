package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/core/domain"
)

func TestEmbedded_Load(t *testing.T) {
	vehicles, err := Embedded().Load(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 50)

	first := vehicles[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Butch Zenith GTR: Sovereign Edition", first.Name)
	assert.Equal(t, 2055, first.Year)
	assert.Equal(t, domain.TierSovereign, first.Tier)
	assert.Equal(t, domain.CategorySupercar, first.Category)
	assert.Equal(t, "Butch Maranello Hub", first.Origin)
	assert.Equal(t, domain.MarketAvailable, first.MarketState)
	assert.Equal(t, "120M BUX", first.PriceLabel)
	require.NotNil(t, first.CrewQuarters)
	assert.Equal(t, 0, *first.CrewQuarters)
	assert.Equal(t, "620 km/h", first.Specs.Speed)
	assert.Len(t, first.Specs.Tech, 3)
}

func TestEmbedded_UniqueIDs(t *testing.T) {
	vehicles, err := Embedded().Load(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, v := range vehicles {
		assert.False(t, seen[v.ID], "duplicate id %s", v.ID)
		seen[v.ID] = true
		assert.Greater(t, v.Tier.Rank(), 0, "vehicle %s has unknown tier %q", v.ID, v.Tier)
	}
}

func TestEmbedded_Name(t *testing.T) {
	assert.Equal(t, "embedded", Embedded().Name())
}

func TestFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `vehicles:
  - id: a
    name: Test Hauler
    year: 2050
    luxuryLevel: Humanitarian
    type: Humanitarian
    origin: Butch Manila Works
    specs:
      speed: 100 km/h
      engine: Electric
      tech: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	src := File(path)
	vehicles, err := src.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Test Hauler", vehicles[0].Name)
	assert.Equal(t, domain.MarketNone, vehicles[0].MarketState)
	assert.Empty(t, vehicles[0].PriceLabel)
	assert.Nil(t, vehicles[0].CrewQuarters)
	assert.Equal(t, path, src.Name())
}

func TestFile_Load_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFile_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := File("whatever.yaml").Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_Empty(t *testing.T) {
	vehicles, err := Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "vehicles:\n  - id: a\n    name: A\n    colour: red\n"},
		{"missing id", "vehicles:\n  - name: A\n"},
		{"missing name", "vehicles:\n  - id: a\n"},
		{"bad market", "vehicles:\n  - id: a\n    name: A\n    marketStatus: Sold\n"},
		{"bad year", "vehicles:\n  - id: a\n    name: A\n    year: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}
