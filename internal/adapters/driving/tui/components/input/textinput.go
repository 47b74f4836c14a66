// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
)

// SearchInput is the live catalog search box.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a focused search box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Name, year or type..."
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input. changed reports whether the
// search term differs afterwards.
func (s *SearchInput) Update(msg tea.Msg) (input *SearchInput, cmd tea.Cmd, changed bool) {
	before := s.textinput.Value()
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd, s.textinput.Value() != before
}

// View renders the labelled search box.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search ")
	field := s.styles.InputField
	if s.textinput.Focused() {
		field = field.BorderForeground(s.styles.Theme().Primary)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field.Render(s.textinput.View()))
}

// Value returns the current search term.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the search term.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus gives the input keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the rendered width, keeping room for the label.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.textinput.Width = max(width-14, 20)
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the search term.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
