// Package dashboard provides the landing view: impact figures and the main menu.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/messages"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool
}

// View is the dashboard.
type View struct {
	styles   *styles.Styles
	catalog  driving.CatalogService
	settings driving.SettingsService
	ctx      context.Context

	items    []Item
	selected int
	stats    []domain.ImpactStat
	ai       *domain.AISettings
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a dashboard. settings may be nil.
func NewView(s *styles.Styles, catalog driving.CatalogService, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		catalog:  catalog,
		settings: settings,
		ctx:      context.Background(),
		items: []Item{
			{Label: "Browse Catalog", View: messages.ViewCatalog},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the impact figures and the generation settings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadStats(), v.loadSettings())
}

func (v *View) loadStats() tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.StatsLoaded{}
		}
		stats, err := v.catalog.Stats(v.ctx)
		return messages.StatsLoaded{Stats: stats, Err: err}
	}
}

func (v *View) loadSettings() tea.Cmd {
	if v.settings == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := v.settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.StatsLoaded:
		v.stats, v.err = msg.Stats, msg.Err
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			ai := msg.Settings.AI
			v.ai = &ai
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}
		case "/":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewCatalog}
			}
		case "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}
		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("BUTCH GARAGE"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Luxury Showroom & Global Impact Hub"))
	b.WriteString("\n\n")

	b.WriteString(v.renderStats())
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + item.Label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderGeneration())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [/] Catalog  [q] Quit"))

	return b.String()
}

func (v *View) renderStats() string {
	if v.err != nil {
		return v.styles.Error.Render("Error: " + v.err.Error())
	}
	if len(v.stats) == 0 {
		return v.styles.Muted.Render("Loading impact figures...")
	}

	cards := make([]string, 0, len(v.stats))
	for _, s := range v.stats {
		card := lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Muted.Render(strings.ToUpper(s.Label)),
			v.styles.Price.Render(s.Value),
			v.styles.Subtitle.Render(s.Sublabel),
		)
		cards = append(cards, v.styles.Border.Padding(0, 1).Render(card))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *View) renderGeneration() string {
	switch {
	case v.ai == nil:
		return v.styles.Muted.Render("AI gateway: unknown")
	case v.ai.IsConfigured():
		return v.styles.Success.Render(fmt.Sprintf("AI gateway: online (%s)", v.ai.TextModel))
	default:
		return v.styles.Warning.Render("AI gateway: offline, run 'showroom settings set-key'")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Stats returns the loaded impact figures.
func (v *View) Stats() []domain.ImpactStat {
	return v.stats
}
