package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyc-safety-calculator/internal/component/pointer"
	"github.com/nyc-safety-calculator/internal/domain"
)

type selection struct {
	group string
	item  string
}

func newTestMenu(t *testing.T) (*Menu, *[]selection) {
	t.Helper()
	var got []selection
	m := New(domain.NYCTable(), func(group, item string) {
		got = append(got, selection{group, item})
	})
	return m, &got
}

func TestMenu_StartsClosed(t *testing.T) {
	m, _ := newTestMenu(t)

	assert.False(t, m.IsOpen())
	assert.Empty(t, m.OpenGroups())

	rows := m.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, RowButton, rows[0].Kind)
	assert.Equal(t, "Select Location", rows[0].Label)
}

func TestMenu_ToggleOpen(t *testing.T) {
	m, got := newTestMenu(t)

	m.ToggleOpen()
	assert.True(t, m.IsOpen())
	assert.Len(t, m.Rows(), 7, "button plus six groups")

	m.ToggleOpen()
	assert.False(t, m.IsOpen())
	assert.Empty(t, *got)
}

func TestMenu_ToggleGroupIsIndependent(t *testing.T) {
	m, got := newTestMenu(t)
	m.ToggleOpen()

	m.ToggleGroup("Bronx")
	m.ToggleGroup("Jersey")

	assert.True(t, m.IsOpen(), "parent stays open")
	assert.True(t, m.IsGroupOpen("Bronx"), "first group stays open")
	assert.True(t, m.IsGroupOpen("Jersey"))
	assert.False(t, m.IsGroupOpen("Queens"))
	assert.Equal(t, []string{"Bronx", "Jersey"}, m.OpenGroups())
	assert.Empty(t, *got, "toggling never selects")

	m.ToggleGroup("Bronx")
	assert.False(t, m.IsGroupOpen("Bronx"))
	assert.True(t, m.IsGroupOpen("Jersey"), "sibling untouched")
}

func TestMenu_ToggleUnknownGroupIgnored(t *testing.T) {
	m, _ := newTestMenu(t)
	m.ToggleGroup("Long Island")
	assert.Empty(t, m.OpenGroups())
}

func TestMenu_RowsListItemsOfOpenGroups(t *testing.T) {
	m, _ := newTestMenu(t)
	m.ToggleOpen()
	m.ToggleGroup("Bronx")

	var items []string
	for _, r := range m.Rows() {
		if r.Kind == RowItem {
			assert.Equal(t, "Bronx", r.Group)
			items = append(items, r.Item)
		}
	}
	assert.Equal(t, []string{"Riverdale", "Pelham Bay"}, items)
}

func TestMenu_SelectItemCallsOnceAndCollapses(t *testing.T) {
	m, got := newTestMenu(t)
	m.ToggleOpen()
	m.ToggleGroup("Brooklyn")
	m.ToggleGroup("Queens")
	m.ToggleGroup("Manhattan")

	m.SelectItem("Brooklyn", "DUMBO")

	require.Len(t, *got, 1)
	assert.Equal(t, selection{"Brooklyn", "DUMBO"}, (*got)[0], "strings passed through unchanged")
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.OpenGroups())
}

func TestMenu_ActivateRows(t *testing.T) {
	m, got := newTestMenu(t)

	m.Activate(m.Rows()[0])
	require.True(t, m.IsOpen())

	var jersey Row
	for _, r := range m.Rows() {
		if r.Kind == RowGroup && r.Group == "Jersey" {
			jersey = r
		}
	}
	m.Activate(jersey)
	require.True(t, m.IsGroupOpen("Jersey"))

	rows := m.Rows()
	last := rows[len(rows)-1]
	require.Equal(t, RowItem, last.Kind)
	m.Activate(last)

	assert.Equal(t, []selection{{"Jersey", "Hoboken"}}, *got)
	assert.False(t, m.IsOpen())
}

func TestMenu_OutsideClickCollapsesWithoutSelecting(t *testing.T) {
	d := pointer.NewDispatcher()
	m, got := newTestMenu(t)
	m.Mount(d)
	defer m.Unmount()

	m.ToggleOpen()
	m.ToggleGroup("Queens")

	d.Dispatch(pointer.At(DefaultRegion, 3, 4))
	assert.True(t, m.IsOpen(), "click inside keeps menu open")
	assert.True(t, m.IsGroupOpen("Queens"))

	d.Dispatch(pointer.At("result-panel", 10, 20))
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.OpenGroups())
	assert.Empty(t, *got)
}

func TestMenu_NestedTargetCountsAsInside(t *testing.T) {
	d := pointer.NewDispatcher()
	m, _ := newTestMenu(t)
	m.Mount(d)
	defer m.Unmount()

	m.ToggleOpen()
	d.Dispatch(pointer.Event{Path: []pointer.Region{"group:Queens", DefaultRegion, "page"}})
	assert.True(t, m.IsOpen())
}

func TestMenu_MountUnmountLifecycle(t *testing.T) {
	d := pointer.NewDispatcher()
	m, _ := newTestMenu(t)

	m.Mount(d)
	m.Mount(d)
	assert.True(t, m.Mounted())
	assert.Equal(t, 1, d.Listeners(), "double mount registers once")

	m.Unmount()
	m.Unmount()
	assert.False(t, m.Mounted())
	assert.Equal(t, 0, d.Listeners(), "no leaked listener")

	m.ToggleOpen()
	d.Dispatch(pointer.At("elsewhere", 0, 0))
	assert.True(t, m.IsOpen(), "unmounted menu ignores document clicks")
}

func TestMenu_TwoInstancesOwnRegions(t *testing.T) {
	d := pointer.NewDispatcher()
	a := New(domain.NYCTable(), nil, WithRegion("a"))
	b := New(domain.NYCTable(), nil, WithRegion("b"))
	a.Mount(d)
	b.Mount(d)
	defer a.Unmount()
	defer b.Unmount()

	a.ToggleOpen()
	b.ToggleOpen()

	d.Dispatch(pointer.At("a", 0, 0))
	assert.True(t, a.IsOpen())
	assert.False(t, b.IsOpen())
}

func TestMenu_Restore(t *testing.T) {
	m, _ := newTestMenu(t)
	m.Restore(true, []string{"Queens", "Atlantis", "Bronx"})

	assert.True(t, m.IsOpen())
	assert.Equal(t, []string{"Queens", "Bronx"}, m.OpenGroups())
}
