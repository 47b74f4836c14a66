package catalog

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui/messages"
	"github.com/butch-garage/showroom/internal/core/domain"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	QueryFunc  func(ctx context.Context, q domain.Query) ([]*domain.Vehicle, error)
	FacetsFunc func(ctx context.Context) (domain.Facets, error)
}

func (m *MockCatalogService) List(context.Context) ([]*domain.Vehicle, error) {
	return testVehicles(), nil
}

func (m *MockCatalogService) Get(context.Context, string) (*domain.Vehicle, error) {
	return nil, domain.ErrNotFound
}

func (m *MockCatalogService) Query(ctx context.Context, q domain.Query) ([]*domain.Vehicle, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, q)
	}
	return testVehicles(), nil
}

func (m *MockCatalogService) Facets(ctx context.Context) (domain.Facets, error) {
	if m.FacetsFunc != nil {
		return m.FacetsFunc(ctx)
	}
	return testFacets(), nil
}

func (m *MockCatalogService) Stats(context.Context) ([]domain.ImpactStat, error) {
	return domain.CommunityStats(), nil
}

func (m *MockCatalogService) Trend(_ context.Context, id string) ([]domain.TrendPoint, error) {
	return domain.TrendSeries(id), nil
}

func testVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: "1", Name: "Zenith GTR", Year: 2055, Tier: domain.TierSovereign,
			Category: domain.CategorySupercar, Origin: "Maranello", PriceLabel: "120M BUX"},
		{ID: "2", Name: "Sky Chain", Year: 2060, Tier: domain.TierElite,
			Category: domain.CategoryChainJet, Origin: "Geneva", PriceLabel: "2.5B BUX"},
	}
}

func testFacets() domain.Facets {
	return domain.Facets{
		Years:      []string{domain.All, "2060", "2055"},
		Categories: []string{domain.All, "Chain Jet", "Supercar"},
		Origins:    []string{domain.All, "Geneva", "Maranello"},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loaded returns a view that has facets and a first result set, with the
// list focused.
func loaded(t *testing.T, svc *MockCatalogService) *View {
	t.Helper()
	v := NewView(nil, nil, svc)
	v.SetDimensions(120, 40)
	v.Update(v.loadFacets()())
	v.Update(v.runQuery()())
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, v.InputFocused())
	return v
}

// press sends a key and feeds the resulting query response back in.
func press(v *View, msg tea.KeyMsg) {
	_, cmd := v.Update(msg)
	if cmd == nil {
		return
	}
	if out, ok := cmd().(messages.VehiclesLoaded); ok {
		v.Update(out)
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})

	require.NotNil(t, v)
	assert.Equal(t, domain.DefaultQuery(), v.Query())
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Init(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})

	assert.NotNil(t, v.Init())
	assert.True(t, v.Pending())
}

func TestView_VehiclesLoaded(t *testing.T) {
	v := loaded(t, &MockCatalogService{})

	assert.Len(t, v.Vehicles(), 2)
	assert.False(t, v.Pending())
	assert.Contains(t, v.View(), "Zenith GTR")
	assert.Contains(t, v.View(), "2 vehicles")
}

func TestView_StaleResponseIgnored(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 40)

	stale := v.runQuery()
	fresh := v.runQuery()

	v.Update(fresh())
	require.Len(t, v.Vehicles(), 2)

	v.Update(messages.VehiclesLoaded{RequestID: "old", Vehicles: nil})
	staleMsg := stale().(messages.VehiclesLoaded)
	staleMsg.Vehicles = testVehicles()[:1]
	v.Update(staleMsg)

	assert.Len(t, v.Vehicles(), 2)
}

func TestView_LatestWinsOutOfOrder(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{
		QueryFunc: func(_ context.Context, q domain.Query) ([]*domain.Vehicle, error) {
			if q.Search == "sky" {
				return testVehicles()[1:], nil
			}
			return testVehicles(), nil
		},
	})
	v.SetDimensions(120, 40)

	_, first := v.apply(v.query.WithSearch("s"))
	_, second := v.apply(v.query.WithSearch("sky"))

	v.Update(second())
	v.Update(first())

	require.Len(t, v.Vehicles(), 1)
	assert.Equal(t, "2", v.Vehicles()[0].ID)
}

func TestView_TypingRunsQuery(t *testing.T) {
	var seen []domain.Query
	v := NewView(nil, nil, &MockCatalogService{
		QueryFunc: func(_ context.Context, q domain.Query) ([]*domain.Vehicle, error) {
			seen = append(seen, q)
			return testVehicles(), nil
		},
	})
	v.SetDimensions(120, 40)

	press(v, runeKey('2'))
	press(v, runeKey('0'))

	require.Len(t, seen, 2)
	assert.Equal(t, "2", seen[0].Search)
	assert.Equal(t, "20", seen[1].Search)
	assert.Equal(t, "20", v.Query().Search)
}

func TestView_FacetKeysTypeWhileInputFocused(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 40)

	press(v, runeKey('m'))

	assert.Equal(t, "m", v.Query().Search)
	assert.Equal(t, domain.All, v.Query().Market)
}

func TestView_FacetCycling(t *testing.T) {
	v := loaded(t, &MockCatalogService{})

	press(v, runeKey('m'))
	assert.Equal(t, domain.MarketAvailable.String(), v.Query().Market)

	press(v, runeKey('y'))
	assert.Equal(t, "2060", v.Query().Year)

	press(v, runeKey('c'))
	press(v, runeKey('c'))
	assert.Equal(t, "Supercar", v.Query().Category)

	press(v, runeKey('c'))
	assert.Equal(t, domain.All, v.Query().Category)

	press(v, runeKey('o'))
	assert.Equal(t, "Geneva", v.Query().Origin)

	press(v, runeKey('s'))
	assert.Equal(t, domain.SortByTier, v.Query().Sort)

	view := v.View()
	assert.Contains(t, view, "Market: Available")
	assert.Contains(t, view, "Origin: Geneva")
	assert.Contains(t, view, "Luxury tier")
}

func TestView_Reset(t *testing.T) {
	v := loaded(t, &MockCatalogService{})
	v.input.SetValue("zen")
	press(v, runeKey('m'))
	press(v, runeKey('s'))

	press(v, runeKey('r'))

	assert.Equal(t, domain.DefaultQuery(), v.Query())
	assert.Equal(t, "", v.input.Value())
}

func TestView_ResetHintOnlyWhenFiltered(t *testing.T) {
	v := loaded(t, &MockCatalogService{})
	assert.NotContains(t, v.View(), "r reset")

	press(v, runeKey('s'))
	assert.NotContains(t, v.View(), "r reset", "sorting alone is not a filter")

	press(v, runeKey('o'))
	assert.Contains(t, v.View(), "r reset")

	press(v, runeKey('r'))
	assert.NotContains(t, v.View(), "r reset")
}

func TestView_Navigation(t *testing.T) {
	v := loaded(t, &MockCatalogService{})

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())

	v.Update(runeKey('k'))
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_SelectVehicle(t *testing.T) {
	v := loaded(t, &MockCatalogService{})
	v.Update(runeKey('j'))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.VehicleSelected)
	require.True(t, ok)
	assert.Equal(t, "2", selected.Vehicle.ID)
}

func TestView_SelectOnEmptyList(t *testing.T) {
	v := loaded(t, &MockCatalogService{
		QueryFunc: func(context.Context, domain.Query) ([]*domain.Vehicle, error) {
			return []*domain.Vehicle{}, nil
		},
	})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No vehicles")
}

func TestView_FocusReturnsToInput(t *testing.T) {
	v := loaded(t, &MockCatalogService{})

	v.Update(runeKey('/'))

	assert.True(t, v.InputFocused())
}

func TestView_EscGoesToDashboard(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewDashboard}, cmd())
}

func TestView_HelpAndQuit(t *testing.T) {
	v := loaded(t, &MockCatalogService{})

	_, cmd := v.Update(runeKey('?'))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())

	_, cmd = v.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_QueryError(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{
		QueryFunc: func(context.Context, domain.Query) ([]*domain.Vehicle, error) {
			return nil, errors.New("catalog offline")
		},
	})
	v.SetDimensions(120, 40)

	v.Update(v.runQuery()())

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "catalog offline")
}

func TestView_FacetsError(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{
		FacetsFunc: func(context.Context) (domain.Facets, error) {
			return domain.Facets{}, errors.New("no facets")
		},
	})

	v.Update(v.loadFacets()())

	assert.EqualError(t, v.Err(), "no facets")
}

func TestView_NilService(t *testing.T) {
	v := NewView(nil, nil, nil)

	v.Update(v.runQuery()())

	assert.ErrorIs(t, v.Err(), ErrNoCatalogService)
}

func TestView_ErrorOccurred(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
}
