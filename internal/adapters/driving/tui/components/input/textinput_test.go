package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
)

func typeRunes(in *SearchInput, text string) {
	for _, r := range text {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, 50, input.Width())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	assert.NotNil(t, input.Init())
}

func TestSearchInput_Update_ReportsChange(t *testing.T) {
	input := NewSearchInput(nil)

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})

	assert.True(t, changed)
	assert.Equal(t, "2", input.Value())
}

func TestSearchInput_Update_NoChangeOnNavigation(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("zenith")

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.False(t, changed)
	assert.Equal(t, "zenith", input.Value())
}

func TestSearchInput_Update_Backspace(t *testing.T) {
	input := NewSearchInput(nil)
	typeRunes(input, "2055")

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.True(t, changed)
	assert.Equal(t, "205", input.Value())
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	assert.Contains(t, input.View(), "Search")
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	assert.NotNil(t, input.Focus())
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 86, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}

func TestSearchInput_Reset(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("butch")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
