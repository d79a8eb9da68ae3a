// Package menu - двухуровневое раскрывающееся меню (группа -> пункт).
//
// Меню не зависит от способа отрисовки: терминал и HTML-страница получают
// видимые строки через Rows и передают действия пользователя в методы Menu.
package menu

import (
	"github.com/nyc-safety-calculator/internal/component/pointer"
	"go.uber.org/zap"
)

// DefaultRegion - область, которой владеет меню
const DefaultRegion pointer.Region = "location-menu"

// ButtonLabel - надпись на кнопке меню
const ButtonLabel = "Select Location"

// Source - данные меню: упорядоченные группы и их пункты
type Source interface {
	GroupNames() []string
	ItemNames(group string) []string
}

// SelectFunc вызывается ровно один раз на каждый выбор пункта
type SelectFunc func(group, item string)

// RowKind - тип видимой строки меню
type RowKind int

const (
	RowButton RowKind = iota
	RowGroup
	RowItem
)

// Row - видимая строка меню
type Row struct {
	Kind     RowKind
	Group    string
	Item     string
	Label    string
	Expanded bool
}

// Option настраивает Menu
type Option func(*Menu)

// WithRegion задаёт область меню для определения клика снаружи
func WithRegion(r pointer.Region) Option {
	return func(m *Menu) { m.region = r }
}

// WithLogger задаёт логгер
func WithLogger(l *zap.Logger) Option {
	return func(m *Menu) { m.logger = l }
}

// Menu - состояние меню на время жизни смонтированного компонента
type Menu struct {
	source   Source
	onSelect SelectFunc
	region   pointer.Region
	logger   *zap.Logger

	open       bool
	openGroups map[string]bool

	unsubscribe func()
}

// New создает закрытое меню
func New(source Source, onSelect SelectFunc, opts ...Option) *Menu {
	m := &Menu{
		source:     source,
		onSelect:   onSelect,
		region:     DefaultRegion,
		openGroups: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	return m
}

// Region возвращает область меню
func (m *Menu) Region() pointer.Region {
	return m.region
}

// Mount подписывает меню на нажатия вне его области
func (m *Menu) Mount(d *pointer.Dispatcher) {
	if m.unsubscribe != nil || d == nil {
		return
	}
	m.unsubscribe = d.Subscribe(m.HandlePointerDown)
	m.logger.Debug("Menu mounted", zap.String("region", string(m.region)))
}

// Unmount снимает подписку
func (m *Menu) Unmount() {
	if m.unsubscribe == nil {
		return
	}
	m.unsubscribe()
	m.unsubscribe = nil
	m.logger.Debug("Menu unmounted", zap.String("region", string(m.region)))
}

// Mounted - меню смонтировано
func (m *Menu) Mounted() bool {
	return m.unsubscribe != nil
}

// ToggleOpen - нажатие на кнопку "Select Location"
func (m *Menu) ToggleOpen() {
	m.open = !m.open
}

// ToggleGroup раскрывает или сворачивает одну группу, не трогая соседние
func (m *Menu) ToggleGroup(group string) {
	if !m.hasGroup(group) {
		return
	}
	m.openGroups[group] = !m.openGroups[group]
}

// SelectItem сообщает о выборе и полностью сворачивает меню.
// Строки передаются как есть, без нормализации.
func (m *Menu) SelectItem(group, item string) {
	m.logger.Debug("Menu item selected",
		zap.String("group", group),
		zap.String("item", item))

	if m.onSelect != nil {
		m.onSelect(group, item)
	}
	m.Collapse()
}

// Collapse закрывает меню и все подменю
func (m *Menu) Collapse() {
	m.open = false
	m.openGroups = make(map[string]bool)
}

// HandlePointerDown сворачивает меню при нажатии вне его области
func (m *Menu) HandlePointerDown(ev pointer.Event) {
	if ev.Within(m.region) {
		return
	}
	if m.open || len(m.OpenGroups()) > 0 {
		m.logger.Debug("Outside click, collapsing menu")
	}
	m.Collapse()
}

// IsOpen - открыт ли список групп
func (m *Menu) IsOpen() bool {
	return m.open
}

// IsGroupOpen - раскрыта ли группа
func (m *Menu) IsGroupOpen(group string) bool {
	return m.openGroups[group]
}

// OpenGroups возвращает раскрытые группы в порядке объявления
func (m *Menu) OpenGroups() []string {
	var out []string
	for _, g := range m.source.GroupNames() {
		if m.openGroups[g] {
			out = append(out, g)
		}
	}
	return out
}

// Restore восстанавливает состояние открытия, например из параметров запроса.
// Неизвестные группы пропускаются.
func (m *Menu) Restore(open bool, groups []string) {
	m.Collapse()
	m.open = open
	for _, g := range groups {
		if m.hasGroup(g) {
			m.openGroups[g] = true
		}
	}
}

// Rows возвращает видимые строки: кнопку, затем группы и пункты раскрытых групп
func (m *Menu) Rows() []Row {
	rows := []Row{{Kind: RowButton, Label: ButtonLabel, Expanded: m.open}}
	if !m.open {
		return rows
	}

	for _, g := range m.source.GroupNames() {
		expanded := m.openGroups[g]
		rows = append(rows, Row{Kind: RowGroup, Group: g, Label: g, Expanded: expanded})
		if !expanded {
			continue
		}
		for _, it := range m.source.ItemNames(g) {
			rows = append(rows, Row{Kind: RowItem, Group: g, Item: it, Label: it})
		}
	}
	return rows
}

// Activate выполняет действие строки
func (m *Menu) Activate(r Row) {
	switch r.Kind {
	case RowButton:
		m.ToggleOpen()
	case RowGroup:
		m.ToggleGroup(r.Group)
	case RowItem:
		m.SelectItem(r.Group, r.Item)
	}
}

func (m *Menu) hasGroup(group string) bool {
	for _, g := range m.source.GroupNames() {
		if g == group {
			return true
		}
	}
	return false
}
