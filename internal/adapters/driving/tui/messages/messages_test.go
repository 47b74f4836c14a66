package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewDashboard, "dashboard"},
		{ViewCatalog, "catalog"},
		{ViewDetail, "detail"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestLatest_LastIssuedWins(t *testing.T) {
	var l Latest

	assert.False(t, l.Pending())

	first := l.Issue()
	second := l.Issue()

	assert.NotEqual(t, first, second)
	assert.False(t, l.IsCurrent(first))
	assert.True(t, l.IsCurrent(second))
	assert.True(t, l.Pending())
}

func TestLatest_Done(t *testing.T) {
	var l Latest
	id := l.Issue()

	l.Done()

	assert.False(t, l.Pending())
	assert.False(t, l.IsCurrent(id))
}

func TestLatest_EmptyIDNeverCurrent(t *testing.T) {
	var l Latest

	assert.False(t, l.IsCurrent(""))
}
