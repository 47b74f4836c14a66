// Package catalog provides the searchable, filterable vehicle list view.
package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/components/input"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/components/list"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/components/status"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/keymap"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/messages"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// View is the catalog browser: search box, facet bar, vehicle list and status bar.
// Every change to the search term or a facet re-runs the query.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.VehicleList
	statusbar *status.Bar

	catalog driving.CatalogService
	ctx     context.Context

	query  domain.Query
	facets domain.Facets
	latest messages.Latest

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a catalog view starting from the default query.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewVehicleList(s),
		statusbar:  status.NewBar(s, km),
		catalog:    catalog,
		ctx:        context.Background(),
		query:      domain.DefaultQuery(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the facets and runs the current query.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadFacets(), v.runQuery())
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.VehiclesLoaded:
		v.handleVehiclesLoaded(msg)
		return v, nil

	case messages.FacetsLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.facets = msg.Facets
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(key, v.keymap.Focus):
		v.focusInput = true
		v.statusbar.SetHints(nil)
		return v, v.input.Focus()

	case keymap.Matches(key, v.keymap.Select):
		vehicle := v.list.SelectedVehicle()
		if vehicle == nil {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.VehicleSelected{Vehicle: vehicle}
		}

	case keymap.Matches(key, v.keymap.Market):
		return v.apply(v.query.WithMarket(domain.NextValue(domain.MarketFacet(), v.query.Market)))

	case keymap.Matches(key, v.keymap.Year):
		return v.apply(v.query.WithYear(domain.NextValue(v.facets.Years, v.query.Year)))

	case keymap.Matches(key, v.keymap.Category):
		return v.apply(v.query.WithCategory(domain.NextValue(v.facets.Categories, v.query.Category)))

	case keymap.Matches(key, v.keymap.Origin):
		return v.apply(v.query.WithOrigin(domain.NextValue(v.facets.Origins, v.query.Origin)))

	case keymap.Matches(key, v.keymap.Sort):
		return v.apply(v.query.WithSort(v.query.Sort.Next()))

	case keymap.Matches(key, v.keymap.Reset):
		v.input.Reset()
		return v.apply(domain.DefaultQuery())
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only the keys that leave the input
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		v.focusInput = false
		v.input.Blur()
		v.statusbar.SetHints(v.keymap.CatalogHelp())
		return v, nil
	}

	var changed bool
	v.input, _, changed = v.input.Update(msg)
	if !changed {
		return v, nil
	}
	return v.apply(v.query.WithSearch(v.input.Value()))
}

// apply replaces the query and re-runs it.
func (v *View) apply(q domain.Query) (*View, tea.Cmd) {
	v.query = q
	return v, v.runQuery()
}

// runQuery issues a new request; only its response will be shown.
func (v *View) runQuery() tea.Cmd {
	id := v.latest.Issue()
	q := v.query
	v.statusbar.SetState(status.StateLoading)

	return func() tea.Msg {
		if v.catalog == nil {
			return messages.VehiclesLoaded{RequestID: id, Query: q, Err: ErrNoCatalogService}
		}
		vehicles, err := v.catalog.Query(v.ctx, q)
		return messages.VehiclesLoaded{RequestID: id, Query: q, Vehicles: vehicles, Err: err}
	}
}

func (v *View) loadFacets() tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.FacetsLoaded{Err: ErrNoCatalogService}
		}
		facets, err := v.catalog.Facets(v.ctx)
		return messages.FacetsLoaded{Facets: facets, Err: err}
	}
}

func (v *View) handleVehiclesLoaded(msg messages.VehiclesLoaded) {
	if !v.latest.IsCurrent(msg.RequestID) {
		return
	}
	v.latest.Done()

	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetVehicles(msg.Vehicles)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Vehicles))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Butch Garage Showroom"), "",
		v.input.View(),
		v.renderFacetBar(), "",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFacetBar() string {
	chips := []string{
		v.chip("Market", v.query.Market),
		v.chip("Year", v.query.Year),
		v.chip("Type", v.query.Category),
		v.chip("Origin", v.query.Origin),
		v.chip("Sort", v.query.Sort.Description()),
	}
	if !v.query.IsUnfiltered() {
		chips = append(chips, v.styles.Muted.Render("r reset"))
	}
	return strings.Join(chips, " ")
}

func (v *View) chip(label, value string) string {
	if value == "" {
		value = domain.All
	}
	return v.styles.Facet.Render(fmt.Sprintf("%s: %s", label, value))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the active query.
func (v *View) Query() domain.Query {
	return v.query
}

// Facets returns the loaded filter options.
func (v *View) Facets() domain.Facets {
	return v.facets
}

// Vehicles returns the vehicles currently shown.
func (v *View) Vehicles() []*domain.Vehicle {
	return v.list.Vehicles()
}

// SelectedIndex returns the index of the highlighted vehicle.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedVehicle returns the highlighted vehicle.
func (v *View) SelectedVehicle() *domain.Vehicle {
	return v.list.SelectedVehicle()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the search box has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Pending reports whether a query response is outstanding.
func (v *View) Pending() bool {
	return v.latest.Pending()
}
