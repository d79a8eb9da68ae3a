// Package calculator - компонент калькулятора безопасности: таблица расстояний,
// выбор района через меню и панель результата.
package calculator

import (
	"github.com/nyc-safety-calculator/internal/component/menu"
	"github.com/nyc-safety-calculator/internal/component/pointer"
	"github.com/nyc-safety-calculator/internal/domain"
	"go.uber.org/zap"
)

// Надписи компонента
const (
	Title          = "NYC Neighborhood Safety Calculator"
	PromptLabel    = "Select your location:"
	CalculateLabel = "Calculate Safety Improvement"
	ResultsTitle   = "Results"
	FootnoteData   = "Based on 2024 NYC traffic data"
	FootnoteTrip   = "Calculation assumes 1-mile round trip for local travel"
)

// State - состояние калькулятора
type State int

const (
	NoSelection State = iota
	Selected
	Calculated
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "no_selection"
	case Selected:
		return "selected"
	case Calculated:
		return "calculated"
	default:
		return "unknown"
	}
}

// Calculator хранит выбор и последний результат.
// После нового выбора старый результат остаётся на экране до следующего расчёта.
type Calculator struct {
	table  *domain.DistanceTable
	model  domain.RiskModel
	logger *zap.Logger

	menu      *menu.Menu
	selection domain.Selection
	result    *domain.CalculationResult
	state     State
}

// New создает калькулятор со встроенным меню
func New(table *domain.DistanceTable, model domain.RiskModel, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Calculator{
		table:  table,
		model:  model,
		logger: logger,
		state:  NoSelection,
	}
	c.menu = menu.New(table, c.SelectItem, menu.WithLogger(logger))

	return c
}

// Mount монтирует меню калькулятора
func (c *Calculator) Mount(d *pointer.Dispatcher) {
	c.menu.Mount(d)
}

// Unmount снимает подписки меню
func (c *Calculator) Unmount() {
	c.menu.Unmount()
}

// Menu возвращает встроенное меню
func (c *Calculator) Menu() *menu.Menu {
	return c.menu
}

// SelectItem запоминает выбор. Результат не пересчитывается и не сбрасывается.
func (c *Calculator) SelectItem(group, item string) {
	c.selection = domain.Selection{Group: group, Item: item}
	c.state = Selected

	c.logger.Debug("Location selected",
		zap.String("group", group),
		zap.String("item", item),
		zap.Bool("stale_result", c.result != nil))
}

// CanCalculate - кнопка расчёта активна только при выбранном районе
func (c *Calculator) CanCalculate() bool {
	return !c.selection.IsEmpty()
}

// Calculate пересчитывает результат для текущего выбора.
// Без выбора ничего не делает.
func (c *Calculator) Calculate() {
	if !c.CanCalculate() {
		return
	}

	r := c.model.Calculate(c.table, c.selection.Item)
	c.result = &r
	c.state = Calculated

	c.logger.Debug("Safety improvement calculated",
		zap.String("item", r.Item),
		zap.Float64("distance_miles", r.DistanceMiles),
		zap.Float64("percent_reduction", r.PercentReduction))
}

// Restore восстанавливает выбор и ранее показанный результат без событий меню
func (c *Calculator) Restore(sel domain.Selection, resultItem string) {
	if resultItem != "" {
		r := c.model.Calculate(c.table, resultItem)
		c.result = &r
		c.state = Calculated
	}
	if !sel.IsEmpty() {
		c.selection = sel
		if c.result == nil || c.result.Item != sel.Item {
			c.state = Selected
		}
	}
}

// Selection - текущий выбор
func (c *Calculator) Selection() domain.Selection {
	return c.selection
}

// Result - последний результат или nil
func (c *Calculator) Result() *domain.CalculationResult {
	if c.result == nil {
		return nil
	}
	r := *c.result
	return &r
}

// State - текущее состояние
func (c *Calculator) State() State {
	return c.state
}
