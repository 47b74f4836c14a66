package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/core/domain"
)

func TestListCmd_DefaultQuery(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Butch-Freighter Mars-Link")
	assert.Contains(t, out, "50 of 50 vehicles (sorted by")
	assert.Less(t, strings.Index(out, "(2063)"), strings.Index(out, "(2055)"), "newest first")
}

func TestListCmd_Search(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "list", "--search", "2055")

	require.NoError(t, err)
	assert.Contains(t, out, "4 of 50 vehicles")
	assert.Contains(t, out, "Butch Zenith GTR: Sovereign Edition")
}

func TestListCmd_NoMatches(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "list", "-s", "no-such-vehicle")

	require.NoError(t, err)
	assert.Contains(t, out, "No vehicles match.")
}

func TestListCmd_JSONSortedByPrice(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "list", "--sort", "price", "--json")
	require.NoError(t, err)

	var vehicles []domain.Vehicle
	require.NoError(t, json.Unmarshal([]byte(out), &vehicles))
	require.Len(t, vehicles, 50)
	assert.Equal(t, "41", vehicles[0].ID)
}

func TestListCmd_Filters(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "list", "--category", "Supercar", "--market", "Auctioning", "--json")
	require.NoError(t, err)

	var vehicles []domain.Vehicle
	require.NoError(t, json.Unmarshal([]byte(out), &vehicles))
	require.NotEmpty(t, vehicles)
	for _, v := range vehicles {
		assert.Equal(t, domain.Category("Supercar"), v.Category)
		assert.Equal(t, domain.MarketAuctioning, v.MarketState)
	}
}

func TestListCmd_InvalidSort(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "list", "--sort", "colour")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCmd_NoService(t *testing.T) {
	SetServices(nil, nil, nil)
	resetFlags()

	_, err := run(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}

func TestShowCmd(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "show", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Butch Zenith GTR: Sovereign Edition")
	assert.Contains(t, out, "Price:    120M BUX")
	assert.Contains(t, out, "Market trend")
	assert.Contains(t, out, "MON")
	assert.Contains(t, out, "SUN")
}

func TestShowCmd_NotFound(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "show", "999")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCmd_JSONIncludesTrend(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "show", "1", "--json")
	require.NoError(t, err)

	var got struct {
		ID    string              `json:"id"`
		Trend []domain.TrendPoint `json:"trend"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, domain.TrendSeries("1"), got.Trend)
}

func TestFacetsCmd(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "facets")

	require.NoError(t, err)
	assert.Contains(t, out, "Years")
	assert.Contains(t, out, "All, 2063")
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Supercar")
	assert.Contains(t, out, "Market")
	assert.Contains(t, out, "year, tier, price")
}

func TestStatsCmd(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Community Impact")
	for _, s := range domain.CommunityStats() {
		assert.Contains(t, out, s.Label)
	}
}
