// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
	"github.com/butch-garage/showroom/internal/core/domain"
)

// VehicleList displays a query result in a navigable list.
type VehicleList struct {
	vehicles []*domain.Vehicle
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewVehicleList creates an empty vehicle list.
func NewVehicleList(s *styles.Styles) *VehicleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &VehicleList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *VehicleList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (l *VehicleList) Update(msg tea.Msg) (*VehicleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			l.selected = max(len(l.vehicles)-1, 0)
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *VehicleList) View() string {
	if len(l.vehicles) == 0 {
		return l.styles.Muted.Render("No vehicles match the current filters")
	}

	lines := make([]string, 0, len(l.vehicles)*2+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Vehicles (%d)", len(l.vehicles))), "")

	// Two lines per vehicle plus the header.
	visible := max((l.height-2)/2, 1)

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.vehicles))

	for i := start; i < end; i++ {
		lines = append(lines, l.renderVehicle(i, l.vehicles[i]))
	}

	return strings.Join(lines, "\n")
}

func (l *VehicleList) renderVehicle(index int, v *domain.Vehicle) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	price := v.PriceLabel
	if price == "" {
		price = "POA"
	}

	nameWidth := max(l.width-len(price)-6, 10)
	name := truncate(v.Name, nameWidth)

	var title string
	if index == l.selected {
		title = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, nameWidth, name, price))
	} else {
		title = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, nameWidth, name)) +
			l.styles.Price.Render(price)
	}

	meta := fmt.Sprintf("    %d · %s · %s · %s", v.Year, v.Category, v.Tier, v.Origin)
	line := l.styles.Muted.Render(truncate(meta, max(l.width-2, 20)))
	if v.MarketState != domain.MarketNone {
		line += " " + l.styles.Market(v.MarketState).Render(v.MarketState.String())
	}

	return title + "\n" + line
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// SetVehicles replaces the list contents and resets the selection.
func (l *VehicleList) SetVehicles(vehicles []*domain.Vehicle) {
	l.vehicles = vehicles
	l.selected = 0
}

// Vehicles returns the current list contents.
func (l *VehicleList) Vehicles() []*domain.Vehicle {
	return l.vehicles
}

// Selected returns the index of the highlighted vehicle.
func (l *VehicleList) Selected() int {
	return l.selected
}

// SetSelected highlights index if it is in range.
func (l *VehicleList) SetSelected(index int) {
	if index >= 0 && index < len(l.vehicles) {
		l.selected = index
	}
}

// SelectedVehicle returns the highlighted vehicle, or nil if the list is empty.
func (l *VehicleList) SelectedVehicle() *domain.Vehicle {
	if l.selected < 0 || l.selected >= len(l.vehicles) {
		return nil
	}
	return l.vehicles[l.selected]
}

// MoveUp moves selection up.
func (l *VehicleList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *VehicleList) MoveDown() {
	if l.selected < len(l.vehicles)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *VehicleList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of vehicles.
func (l *VehicleList) Count() int {
	return len(l.vehicles)
}

// IsEmpty returns whether the list is empty.
func (l *VehicleList) IsEmpty() bool {
	return len(l.vehicles) == 0
}
