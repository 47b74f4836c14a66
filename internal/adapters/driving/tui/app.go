package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/keymap"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/messages"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/views/catalog"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/views/dashboard"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/views/detail"
	"github.com/butch-garage/showroom/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	dashboardView *dashboard.View
	catalogView   *catalog.View
	detailView    *detail.View

	currentView messages.ViewType

	// previousView is restored when leaving help.
	previousView messages.ViewType

	// catalogStarted is set once the catalog has run its first query.
	catalogStarted bool

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboardView: dashboard.NewView(s, ports.Catalog, ports.Settings),
		catalogView:   catalog.NewView(s, km, ports.Catalog),
		detailView:    detail.NewView(s, km, ports.Catalog, ports.Generation),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context used by every view.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	a.catalogView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Butch Garage Showroom"),
		a.dashboardView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.VehicleSelected:
		a.currentView = messages.ViewDetail
		return a, a.detailView.SetVehicle(msg.Vehicle)

	case messages.VehiclesLoaded, messages.FacetsLoaded:
		a.catalogView, cmd = a.catalogView.Update(msg)
		a.err = a.catalogView.Err()
		return a, cmd

	case messages.StatsLoaded, messages.SettingsLoaded:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.TrendLoaded, messages.GenerationCompleted, messages.GenerationTick:
		a.detailView, cmd = a.detailView.Update(msg)
		a.err = a.detailView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewCatalog:
			a.catalogView, cmd = a.catalogView.Update(msg)
		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewDashboard, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blinks and other component messages go to the active view.
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Back), keymap.Matches(msg.String(), a.keymap.Help):
			a.currentView = a.previousView
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return tea.Quit
		}
	}
	return cmd
}

func (a *App) switchView(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = view

	switch view {
	case messages.ViewCatalog:
		if !a.catalogStarted {
			a.catalogStarted = true
			return a.catalogView.Init()
		}
	case messages.ViewDashboard:
		return a.dashboardView.Init()
	case messages.ViewDetail, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCatalog:
		return a.catalogView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.dashboardView.View()
	}
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Catalog (search box focused):
  (type)      Live search by name, year or type
  enter/tab   Move to the vehicle list
  esc         Back to dashboard

Catalog (list focused):
  j/k, ↑/↓    Navigate vehicles
  enter       Open vehicle
  /           Back to the search box
  m y c o     Cycle market, year, type and origin filters
  s           Cycle sort (year, tier, price)
  r           Reset search and filters

Vehicle:
  b           Generate blueprint dossier
  t           Generate performance patch (cycles objectives)
  p           Generate launch campaign (cycles goals)
  j/k         Scroll
  esc         Back to catalog

  ctrl+c      Quit from anywhere

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Query returns the catalog's active query.
func (a *App) Query() domain.Query {
	return a.catalogView.Query()
}

// Vehicles returns the vehicles the catalog is showing.
func (a *App) Vehicles() []*domain.Vehicle {
	return a.catalogView.Vehicles()
}

// SelectedVehicle returns the vehicle open in the detail view.
func (a *App) SelectedVehicle() *domain.Vehicle {
	return a.detailView.Vehicle()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.catalogView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
