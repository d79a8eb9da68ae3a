// Package tui - терминальный интерфейс калькулятора на bubbletea.
//
// Модель монтирует калькулятор при создании и размонтирует при выходе.
// Нажатия мыши и esc рассылаются через pointer.Dispatcher так же, как
// нажатия в документе: всё вне строк меню считается кликом снаружи.
// Модель используется только из цикла событий bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/component/calculator"
	"github.com/nyc-safety-calculator/internal/component/menu"
	"github.com/nyc-safety-calculator/internal/component/pointer"
	"github.com/nyc-safety-calculator/internal/domain"
)

// Область экрана вне меню
const screenRegion pointer.Region = "screen"

// Первая строка меню на экране: заголовок, пустая строка, подсказка
const menuTop = 3

// Model - модель bubbletea поверх calculator.Calculator
type Model struct {
	calc       *calculator.Calculator
	dispatcher *pointer.Dispatcher
	logger     *zap.Logger

	keys keyMap
	help help.Model

	cursor   int
	width    int
	quitting bool
}

// New создает модель и монтирует калькулятор
func New(table *domain.DistanceTable, model domain.RiskModel, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := pointer.NewDispatcher()
	calc := calculator.New(table, model, logger)
	calc.Mount(d)

	return Model{
		calc:       calc,
		dispatcher: d,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Close размонтирует калькулятор. Повторный вызов ничего не делает.
func (m Model) Close() {
	m.calc.Unmount()
}

// Calculator возвращает калькулятор модели
func (m Model) Calculator() *calculator.Calculator {
	return m.calc
}

// Cursor - индекс активной строки
func (m Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.lastRow() {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Activate):
			m.activate(m.cursor)

		case key.Matches(msg, m.keys.Collapse):
			m.dispatcher.Dispatch(pointer.At(screenRegion, -1, -1))
			m.clampCursor()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.press(msg.X, msg.Y)
		}
	}

	return m, nil
}

// press - нажатие мыши в ячейке (x, y)
func (m *Model) press(x, y int) {
	rows := m.calc.Menu().Rows()
	calcLine := m.calculateLine(len(rows))

	if i := y - menuTop; i >= 0 && i < len(rows) {
		m.dispatcher.Dispatch(pointer.Event{
			Path: []pointer.Region{m.calc.Menu().Region(), screenRegion},
			X:    x,
			Y:    y,
		})
		m.cursor = i
		m.activate(i)
		return
	}

	m.dispatcher.Dispatch(pointer.At(screenRegion, x, y))
	if y == calcLine {
		m.cursor = m.lastRow()
		m.activate(m.cursor)
		return
	}
	m.clampCursor()
}

// activate выполняет действие строки i: строка меню или кнопка расчёта
func (m *Model) activate(i int) {
	rows := m.calc.Menu().Rows()
	if i < len(rows) {
		m.calc.Menu().Activate(rows[i])
		m.clampCursor()
		return
	}

	if m.calc.CanCalculate() {
		m.calc.Calculate()
	}
}

// lastRow - индекс кнопки расчёта, она идёт сразу за строками меню
func (m Model) lastRow() int {
	return len(m.calc.Menu().Rows())
}

func (m *Model) clampCursor() {
	if last := m.lastRow(); m.cursor > last {
		m.cursor = last
	}
}

// calculateLine - строка экрана с кнопкой расчёта
func (m Model) calculateLine(menuRows int) int {
	// меню, пустая строка, выбор, пустая строка
	return menuTop + menuRows + 3
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.calc.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(v.Prompt))
	b.WriteString("\n")

	for i, r := range v.MenuRows {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.SelectionLabel != "" {
		b.WriteString("Selected: " + selectedStyle.Render(v.SelectionLabel))
	} else {
		b.WriteString(disabledStyle.Render("Nothing selected"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderCalculate(len(v.MenuRows), v))
	b.WriteString("\n")

	if v.Result != nil {
		b.WriteString("\n")
		b.WriteString(renderResult(v.Result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, note := range v.Footnotes {
		b.WriteString(noteStyle.Render(note))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(i int, r menu.Row) string {
	prefix := "  "
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}

	switch r.Kind {
	case menu.RowButton:
		arrow := "▼"
		if r.Expanded {
			arrow = "▲"
		}
		return prefix + fmt.Sprintf("[ %s %s ]", r.Label, arrow)
	case menu.RowGroup:
		arrow := "▶"
		if r.Expanded {
			arrow = "▼"
		}
		return prefix + groupStyle.Render(fmt.Sprintf("  %s %s", r.Label, arrow))
	default:
		return prefix + itemStyle.Render("      "+r.Label)
	}
}

func (m Model) renderCalculate(i int, v calculator.View) string {
	prefix := "  "
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}

	label := "[ " + v.CalculateLabel + " ]"
	if !v.CanCalculate {
		return prefix + disabledStyle.Render(label)
	}
	return prefix + buttonStyle.Render(label)
}

func renderResult(r *calculator.ResultPanel) string {
	body := strings.Join([]string{
		selectedStyle.Render(calculator.ResultsTitle),
		"Neighborhood: " + r.Item,
		"Safety improvement: " + improvementStyle.Render(r.Display),
	}, "\n")
	return resultStyle.Render(body)
}
