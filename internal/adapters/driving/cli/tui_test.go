package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Cycle market, year, type and origin")
}

func TestTUICmd_RequiresCatalog(t *testing.T) {
	SetServices(nil, nil, nil)
	resetFlags()

	_, err := run(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "tui", "extra")

	require.Error(t, err)
}
