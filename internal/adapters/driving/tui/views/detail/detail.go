// Package detail provides the vehicle detail view with its market trend
// and on-demand AI generation.
package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/components/status"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/keymap"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/messages"
	"github.com/butch-garage/showroom/internal/adapters/driving/tui/styles"
	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driving"
)

// StageInterval is how long each progress stage is shown while generating.
const StageInterval = 900 * time.Millisecond

// ErrGenerationUnavailable is shown when no generator is configured.
var ErrGenerationUnavailable = errors.New("generation unavailable: run 'showroom settings set-key'")

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// View shows one vehicle.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	catalog    driving.CatalogService
	generation driving.GenerationService
	ctx        context.Context

	vehicle *domain.Vehicle
	trend   []domain.TrendPoint
	result  any
	kind    domain.GenerationKind
	latest  messages.Latest
	stage   int

	objective int
	goal      int

	scroll int
	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a detail view. generation may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	generation driving.GenerationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.DetailHelp())

	return &View{
		styles:     s,
		keymap:     km,
		statusbar:  bar,
		catalog:    catalog,
		generation: generation,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetVehicle shows vehicle, discarding any previous generation, and loads its trend.
func (v *View) SetVehicle(vehicle *domain.Vehicle) tea.Cmd {
	v.vehicle = vehicle
	v.trend = nil
	v.result = nil
	v.kind = ""
	v.err = nil
	v.scroll = 0
	v.latest.Done()
	v.statusbar.Clear()

	if vehicle == nil || v.catalog == nil {
		return nil
	}

	id := vehicle.ID
	return func() tea.Msg {
		points, err := v.catalog.Trend(v.ctx, id)
		return messages.TrendLoaded{VehicleID: id, Points: points, Err: err}
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TrendLoaded:
		if v.vehicle == nil || msg.VehicleID != v.vehicle.ID {
			return v, nil
		}
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.trend = msg.Points
		return v, nil

	case messages.GenerationTick:
		if !v.latest.IsCurrent(msg.RequestID) {
			return v, nil
		}
		stages := domain.GenerationStages()
		if v.stage < len(stages)-1 {
			v.stage++
		}
		v.statusbar.SetMessage(stageMessage(v.stage))
		return v, tick(msg.RequestID)

	case messages.GenerationCompleted:
		v.handleGenerationCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCatalog}
		}

	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(key, v.keymap.Up):
		if v.scroll > 0 {
			v.scroll--
		}

	case keymap.Matches(key, v.keymap.Down):
		if v.scroll < v.maxScroll() {
			v.scroll++
		}

	case keymap.Matches(key, v.keymap.Blueprint):
		return v, v.generate(domain.GenerationBlueprint, "")

	case keymap.Matches(key, v.keymap.Tune):
		objectives := domain.TuningObjectives()
		objective := objectives[v.objective%len(objectives)]
		v.objective++
		return v, v.generate(domain.GenerationPerformancePatch, objective)

	case keymap.Matches(key, v.keymap.Social):
		goals := domain.HypeGoals()
		goal := goals[v.goal%len(goals)]
		v.goal++
		return v, v.generate(domain.GenerationSocialCampaign, goal)
	}

	return v, nil
}

// generate issues a request for the shown vehicle. A newer request
// supersedes any still in flight.
func (v *View) generate(kind domain.GenerationKind, arg string) tea.Cmd {
	if v.vehicle == nil {
		return nil
	}
	if v.generation == nil || !v.generation.Available() {
		v.setError(ErrGenerationUnavailable)
		return nil
	}

	id := v.latest.Issue()
	vehicleID := v.vehicle.ID
	ctx := v.ctx
	gen := v.generation

	v.kind = kind
	v.err = nil
	v.stage = 0
	v.statusbar.SetState(status.StateGenerating)
	v.statusbar.SetMessage(stageMessage(0))

	run := func() tea.Msg {
		var (
			result any
			err    error
		)
		switch kind {
		case domain.GenerationPerformancePatch:
			result, err = gen.PerformancePatch(ctx, vehicleID, arg)
		case domain.GenerationSocialCampaign:
			result, err = gen.SocialCampaign(ctx, vehicleID, arg)
		default:
			result, err = gen.Blueprint(ctx, vehicleID)
		}
		return messages.GenerationCompleted{
			RequestID: id,
			Kind:      kind,
			VehicleID: vehicleID,
			Result:    result,
			Err:       err,
		}
	}

	return tea.Batch(run, tick(id))
}

func tick(id string) tea.Cmd {
	return tea.Tick(StageInterval, func(time.Time) tea.Msg {
		return messages.GenerationTick{RequestID: id}
	})
}

func stageMessage(i int) string {
	stages := domain.GenerationStages()
	s := stages[min(i, len(stages)-1)]
	return fmt.Sprintf("[%d/%d] %s: %s", i+1, len(stages), s.Label, s.Logs[0])
}

func (v *View) handleGenerationCompleted(msg messages.GenerationCompleted) {
	if !v.latest.IsCurrent(msg.RequestID) {
		return
	}
	if v.vehicle == nil || msg.VehicleID != v.vehicle.ID {
		return
	}
	v.latest.Done()

	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = msg.Result
	v.kind = msg.Kind
	v.scroll = 0
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage(fmt.Sprintf("%s ready", msg.Kind))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.vehicle == nil {
		return v.styles.Muted.Render("No vehicle selected") + "\n\n" + v.statusbar.View()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	start := min(v.scroll, max(len(lines)-visible, 0))
	end := min(start+visible, len(lines))

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines[start:end], "\n"),
		"",
		v.statusbar.View(),
	)
}

func (v *View) buildContent() []string {
	veh := v.vehicle
	price := veh.PriceLabel
	if price == "" {
		price = "Price on application"
	}

	lines := []string{
		v.styles.Title.Render(veh.Name),
		v.styles.Muted.Render(strings.Repeat("─", min(max(v.width-4, 10), 60))),
		v.field("Year", veh.YearString()),
		v.field("Tier", veh.Tier.String()),
		v.field("Type", veh.Category.String()),
		v.field("Origin", veh.Origin),
	}
	if veh.MarketState != domain.MarketNone {
		lines = append(lines, v.field("Market", v.styles.Market(veh.MarketState).Render(veh.MarketState.String())))
	}
	if veh.CrewQuarters != nil {
		lines = append(lines, v.field("Crew", fmt.Sprintf("%d", *veh.CrewQuarters)))
	}
	lines = append(lines,
		v.field("Price", v.styles.Price.Render(price)),
		v.field("Speed", veh.Specs.Speed),
		v.field("Engine", veh.Specs.Engine),
	)
	if len(veh.Specs.Tech) > 0 {
		lines = append(lines, v.field("Tech", strings.Join(veh.Specs.Tech, ", ")))
	}

	if veh.Description != "" {
		lines = append(lines, "")
		lines = append(lines, v.wrap(veh.Description)...)
	}

	if len(v.trend) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Market Trend"))
		lines = append(lines, v.renderTrend()...)
	}

	if v.err != nil {
		lines = append(lines, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	if v.result != nil {
		lines = append(lines, "")
		lines = append(lines, v.renderResult()...)
	}

	return lines
}

func (v *View) field(label, value string) string {
	return v.styles.Muted.Render(fmt.Sprintf("%-8s", label)) + " " + v.styles.Normal.Render(value)
}

func (v *View) wrap(text string) []string {
	width := min(max(v.width-4, 20), 100)
	return strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
}

// renderTrend draws the week as a sparkline with day labels.
func (v *View) renderTrend() []string {
	lo, hi := v.trend[0].Value, v.trend[0].Value
	for _, p := range v.trend {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}

	var spark, days strings.Builder
	for _, p := range v.trend {
		idx := 0
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		spark.WriteString(strings.Repeat(string(sparkBlocks[idx]), 3))
		spark.WriteString(" ")
		days.WriteString(fmt.Sprintf("%-4s", p.Day))
	}

	last := v.trend[len(v.trend)-1]
	return []string{
		v.styles.Price.Render(spark.String()),
		v.styles.Muted.Render(days.String()),
		v.styles.Muted.Render(fmt.Sprintf("Close %.0f · Volume %d", last.Value, last.Volume)),
	}
}

func (v *View) renderResult() []string {
	switch r := v.result.(type) {
	case *domain.Blueprint:
		lines := []string{
			v.styles.Subtitle.Render("Blueprint: " + r.Title),
			v.field("Details", r.TechnicalDetails),
			v.field("Material", strings.Join(r.Materials, ", ")),
		}
		for i, st := range r.Stages {
			lines = append(lines, v.styles.Normal.Render(fmt.Sprintf("  %d. %s: %s", i+1, st.Name, st.Description)))
		}
		return append(lines, v.field("ROI", r.AIRecommendation))

	case *domain.PerformancePatch:
		return []string{
			v.styles.Subtitle.Render(fmt.Sprintf("Patch %s: %s", r.PatchID, r.ObjectiveName)),
			v.field("Summary", r.OptimizationSummary),
			v.field("Engine", r.EngineTuning),
			v.field("AI", r.AILogicUpgrade),
			v.field("Resonance", r.ResonanceBonus),
			v.field("Stability", r.StabilityRating),
		}

	case *domain.SocialCampaign:
		lines := []string{v.styles.Subtitle.Render("Campaign: " + r.CampaignName)}
		for i, post := range r.XThread {
			lines = append(lines, v.styles.Normal.Render(fmt.Sprintf("  X %d/%d %s", i+1, len(r.XThread), post)))
		}
		return append(lines,
			v.field("Insta", r.InstaCaption),
			v.field("LinkedIn", r.LinkedInPost),
			v.field("TikTok", r.TiktokScript),
			v.field("Tags", strings.Join(r.HolographicHashtags, " ")),
			v.field("Reach", r.ReachProjection),
		)
	}
	return nil
}

func (v *View) visibleLines() int {
	return max(v.height-3, 1)
}

func (v *View) maxScroll() int {
	if v.vehicle == nil {
		return 0
	}
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Vehicle returns the vehicle being shown.
func (v *View) Vehicle() *domain.Vehicle {
	return v.vehicle
}

// Trend returns the loaded market week.
func (v *View) Trend() []domain.TrendPoint {
	return v.trend
}

// Result returns the last generated record, if any.
func (v *View) Result() any {
	return v.result
}

// Kind returns the kind of the last requested generation.
func (v *View) Kind() domain.GenerationKind {
	return v.kind
}

// Generating reports whether a generation is in flight.
func (v *View) Generating() bool {
	return v.latest.Pending()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
