package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/component/menu"
	"github.com/nyc-safety-calculator/internal/component/pointer"
	"github.com/nyc-safety-calculator/internal/domain"
)

func newCalculator() *Calculator {
	return New(domain.NYCTable(), domain.DefaultRiskModel(), zap.NewNop())
}

func TestCalculator_InitialState(t *testing.T) {
	c := newCalculator()

	assert.Equal(t, NoSelection, c.State())
	assert.True(t, c.Selection().IsEmpty())
	assert.Nil(t, c.Result())
	assert.False(t, c.CanCalculate())

	v := c.View()
	assert.False(t, v.CanCalculate)
	assert.Nil(t, v.Result)
	assert.Empty(t, v.SelectionLabel)
}

func TestCalculator_CalculateWithoutSelectionIsNoop(t *testing.T) {
	c := newCalculator()
	c.Calculate()

	assert.Equal(t, NoSelection, c.State())
	assert.Nil(t, c.Result())
}

func TestCalculator_SelectThenCalculate_EveryItem(t *testing.T) {
	table := domain.NYCTable()
	for _, g := range table.Groups() {
		for _, it := range g.Items {
			c := New(table, domain.DefaultRiskModel(), nil)
			c.SelectItem(g.Name, it.Name)
			c.Calculate()

			r := c.Result()
			require.NotNil(t, r)
			assert.Equal(t, it.Name, r.Item)
			assert.Equal(t, it.Miles, r.DistanceMiles)
		}
	}
}

func TestCalculator_ConeyIsland(t *testing.T) {
	c := newCalculator()
	c.SelectItem("Brooklyn", "Coney Island")
	assert.Equal(t, Selected, c.State())
	assert.True(t, c.CanCalculate())

	c.Calculate()
	assert.Equal(t, Calculated, c.State())

	v := c.View()
	require.NotNil(t, v.Result)
	assert.Equal(t, "Coney Island", v.Result.Item)
	assert.Equal(t, "91.7% reduction", v.Result.Display)
	assert.Equal(t, "Brooklyn > Coney Island", v.SelectionLabel)
}

func TestCalculator_Chelsea(t *testing.T) {
	c := newCalculator()
	c.SelectItem("Manhattan", "Chelsea")
	c.Calculate()

	r := c.Result()
	require.NotNil(t, r)
	assert.Equal(t, r.LocalRisk, r.TripRisk)
	assert.Equal(t, "0.0% reduction", r.Display())
}

func TestCalculator_UnknownItem(t *testing.T) {
	c := newCalculator()
	c.SelectItem("Nowhere", "Atlantis")
	c.Calculate()

	r := c.Result()
	require.NotNil(t, r)
	assert.Zero(t, r.DistanceMiles)
	assert.Zero(t, r.TripRisk)
	assert.Zero(t, r.PercentReduction)
}

func TestCalculator_ReselectKeepsStaleResult(t *testing.T) {
	c := newCalculator()
	c.SelectItem("Brooklyn", "Coney Island")
	c.Calculate()

	c.SelectItem("Manhattan", "Chelsea")

	assert.Equal(t, Selected, c.State())
	assert.Equal(t, "Chelsea", c.Selection().Item)
	require.NotNil(t, c.Result())
	assert.Equal(t, "Coney Island", c.Result().Item, "stale result stays until next calculate")

	c.Calculate()
	assert.Equal(t, "Chelsea", c.Result().Item)
	assert.Equal(t, Calculated, c.State())
}

func TestCalculator_ResultIsCopy(t *testing.T) {
	c := newCalculator()
	c.SelectItem("Bronx", "Riverdale")
	c.Calculate()

	r := c.Result()
	r.PercentReduction = -1
	assert.NotEqual(t, -1.0, c.Result().PercentReduction)
}

func TestCalculator_MenuSelectionFeedsCalculator(t *testing.T) {
	d := pointer.NewDispatcher()
	c := newCalculator()
	c.Mount(d)
	defer c.Unmount()

	m := c.Menu()
	m.ToggleOpen()
	m.ToggleGroup("Staten Island")
	m.SelectItem("Staten Island", "New Dorp")

	assert.Equal(t, domain.Selection{Group: "Staten Island", Item: "New Dorp"}, c.Selection())
	assert.Nil(t, c.Result(), "selection alone does not calculate")
	assert.False(t, m.IsOpen())

	rows := c.View().MenuRows
	require.Len(t, rows, 1)
	assert.Equal(t, menu.RowButton, rows[0].Kind)
}

func TestCalculator_MountUnmountReleasesListener(t *testing.T) {
	d := pointer.NewDispatcher()
	c := newCalculator()

	c.Mount(d)
	assert.Equal(t, 1, d.Listeners())
	c.Unmount()
	assert.Equal(t, 0, d.Listeners())
}

func TestCalculator_Restore(t *testing.T) {
	t.Run("stale result with new selection", func(t *testing.T) {
		c := newCalculator()
		c.Restore(domain.Selection{Group: "Manhattan", Item: "Chelsea"}, "Coney Island")

		assert.Equal(t, Selected, c.State())
		assert.Equal(t, "Coney Island", c.Result().Item)
	})

	t.Run("result for current selection", func(t *testing.T) {
		c := newCalculator()
		c.Restore(domain.Selection{Group: "Brooklyn", Item: "Coney Island"}, "Coney Island")
		assert.Equal(t, Calculated, c.State())
	})

	t.Run("nothing", func(t *testing.T) {
		c := newCalculator()
		c.Restore(domain.Selection{}, "")
		assert.Equal(t, NoSelection, c.State())
		assert.Nil(t, c.Result())
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "no_selection", NoSelection.String())
	assert.Equal(t, "selected", Selected.String())
	assert.Equal(t, "calculated", Calculated.String())
}
