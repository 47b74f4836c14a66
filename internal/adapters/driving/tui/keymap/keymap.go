// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the highlighted vehicle.
	Select key.Binding

	// Focus toggles between the search input and the vehicle list.
	Focus key.Binding

	// Market cycles the market filter.
	Market key.Binding

	// Year cycles the year filter.
	Year key.Binding

	// Category cycles the category filter.
	Category key.Binding

	// Origin cycles the origin filter.
	Origin key.Binding

	// Sort cycles the sort key.
	Sort key.Binding

	// Reset clears the search term and every filter.
	Reset key.Binding

	// Blueprint generates a technical dossier.
	Blueprint key.Binding

	// Tune generates a performance patch.
	Tune key.Binding

	// Social generates a launch campaign.
	Social key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/", "tab"),
			key.WithHelp("/", "search"),
		),
		Market: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "market"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "type"),
		),
		Origin: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "origin"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Blueprint: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blueprint"),
		),
		Tune: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tune"),
		),
		Social: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "campaign"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// CatalogHelp returns keybindings for browsing the vehicle list.
func (k *KeyMap) CatalogHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Market, k.Year, k.Category, k.Origin, k.Sort, k.Back}
}

// DetailHelp returns keybindings for the vehicle detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Blueprint, k.Tune, k.Social, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Focus},
		{k.Market, k.Year, k.Category, k.Origin, k.Sort, k.Reset},
		{k.Blueprint, k.Tune, k.Social},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
