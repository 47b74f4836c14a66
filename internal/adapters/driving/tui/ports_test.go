package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	p := newTestPorts(t)

	ports := NewPorts(p.Catalog, p.Generation, p.Settings)

	require.NotNil(t, ports)
	assert.Equal(t, p.Catalog, ports.Catalog)
	assert.Equal(t, p.Generation, ports.Generation)
	assert.Equal(t, p.Settings, ports.Settings)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	assert.NoError(t, newTestPorts(t).Validate())
}

func TestPorts_Validate_OptionalPortsMayBeNil(t *testing.T) {
	ports := &Ports{Catalog: newTestPorts(t).Catalog}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingCatalog(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
