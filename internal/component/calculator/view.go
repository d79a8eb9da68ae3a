package calculator

import (
	"github.com/nyc-safety-calculator/internal/component/menu"
)

// ResultPanel - содержимое панели результата
type ResultPanel struct {
	Item             string
	DistanceMiles    float64
	PercentReduction float64
	Display          string
}

// View - снимок для отрисовки
type View struct {
	Title          string
	Prompt         string
	MenuRows       []menu.Row
	SelectionLabel string
	CalculateLabel string
	CanCalculate   bool
	Result         *ResultPanel
	Footnotes      []string
}

// View собирает данные для отрисовки. Панель результата есть только после расчёта.
func (c *Calculator) View() View {
	v := View{
		Title:          Title,
		Prompt:         PromptLabel,
		MenuRows:       c.menu.Rows(),
		SelectionLabel: c.selection.Label(),
		CalculateLabel: CalculateLabel,
		CanCalculate:   c.CanCalculate(),
		Footnotes:      []string{FootnoteData, FootnoteTrip},
	}

	if c.result != nil {
		v.Result = &ResultPanel{
			Item:             c.result.Item,
			DistanceMiles:    c.result.DistanceMiles,
			PercentReduction: c.result.PercentReduction,
			Display:          c.result.Display(),
		}
	}

	return v
}
