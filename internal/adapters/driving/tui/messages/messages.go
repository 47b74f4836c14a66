// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/google/uuid"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// QueryChanged is sent when any catalog query parameter changes.
type QueryChanged struct {
	Query domain.Query
}

// VehiclesLoaded carries the result of one catalog query.
type VehiclesLoaded struct {
	RequestID string
	Query     domain.Query
	Vehicles  []*domain.Vehicle
	Err       error
}

// FacetsLoaded carries the derived filter options.
type FacetsLoaded struct {
	Facets domain.Facets
	Err    error
}

// StatsLoaded carries the dashboard impact figures.
type StatsLoaded struct {
	Stats []domain.ImpactStat
	Err   error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// VehicleSelected is sent when a vehicle is opened from the catalog.
type VehicleSelected struct {
	Vehicle *domain.Vehicle
}

// TrendLoaded carries the simulated market week for a vehicle.
type TrendLoaded struct {
	VehicleID string
	Points    []domain.TrendPoint
	Err       error
}

// GenerationCompleted carries one finished generation request.
// Result holds a pointer to the record matching Kind.
type GenerationCompleted struct {
	RequestID string
	Kind      domain.GenerationKind
	VehicleID string
	Result    any
	Err       error
}

// GenerationTick advances the progress stage of a pending generation.
type GenerationTick struct {
	RequestID string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard shows impact figures and the main menu.
	ViewDashboard ViewType = iota
	// ViewCatalog is the searchable, filterable vehicle list.
	ViewCatalog
	// ViewDetail shows a single vehicle with its trend and generation panel.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewCatalog:
		return "catalog"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// Latest tracks the most recently issued request for one surface.
// Responses carrying any other request ID are stale and must be dropped.
type Latest struct {
	id string
}

// Issue starts a new request and returns its ID.
func (l *Latest) Issue() string {
	l.id = uuid.NewString()
	return l.id
}

// IsCurrent reports whether id belongs to the latest issued request.
func (l *Latest) IsCurrent(id string) bool {
	return id != "" && id == l.id
}

// Pending reports whether a request is in flight.
func (l *Latest) Pending() bool {
	return l.id != ""
}

// Done marks the latest request as settled.
func (l *Latest) Done() {
	l.id = ""
}
