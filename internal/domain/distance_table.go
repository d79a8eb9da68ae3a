package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateItem - имя района встречается в таблице больше одного раза
	ErrDuplicateItem = errors.New("duplicate item name")

	// ErrInvalidDistance - расстояние должно быть положительным
	ErrInvalidDistance = errors.New("distance must be positive")

	// ErrEmptyName - пустое имя группы или района
	ErrEmptyName = errors.New("empty name")

	// ErrDuplicateGroup - группа объявлена дважды
	ErrDuplicateGroup = errors.New("duplicate group name")
)

// Item - район (лист меню) и расстояние до него в милях
type Item struct {
	Name  string  `json:"name" yaml:"name"`
	Miles float64 `json:"miles" yaml:"miles"`
}

// Group - округ (верхний уровень меню) со списком районов
type Group struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// DistanceTable - неизменяемая двухуровневая таблица расстояний.
// Порядок групп и районов совпадает с порядком объявления.
type DistanceTable struct {
	groups  []Group
	byGroup map[string]int
	flat    map[string]float64
	owner   map[string]string
}

// NewDistanceTable строит таблицу и проверяет её при загрузке:
// имена районов уникальны по всей таблице, расстояния положительные.
func NewDistanceTable(groups []Group) (*DistanceTable, error) {
	t := &DistanceTable{
		groups:  make([]Group, 0, len(groups)),
		byGroup: make(map[string]int, len(groups)),
		flat:    make(map[string]float64),
		owner:   make(map[string]string),
	}

	for _, g := range groups {
		if g.Name == "" {
			return nil, fmt.Errorf("group: %w", ErrEmptyName)
		}
		if _, ok := t.byGroup[g.Name]; ok {
			return nil, fmt.Errorf("group %q: %w", g.Name, ErrDuplicateGroup)
		}

		items := make([]Item, 0, len(g.Items))
		for _, it := range g.Items {
			if it.Name == "" {
				return nil, fmt.Errorf("item in group %q: %w", g.Name, ErrEmptyName)
			}
			if it.Miles <= 0 {
				return nil, fmt.Errorf("item %q in group %q: %w", it.Name, g.Name, ErrInvalidDistance)
			}
			if prev, ok := t.owner[it.Name]; ok {
				return nil, fmt.Errorf("item %q in groups %q and %q: %w", it.Name, prev, g.Name, ErrDuplicateItem)
			}
			t.flat[it.Name] = it.Miles
			t.owner[it.Name] = g.Name
			items = append(items, it)
		}

		t.byGroup[g.Name] = len(t.groups)
		t.groups = append(t.groups, Group{Name: g.Name, Items: items})
	}

	return t, nil
}

// MustDistanceTable - как NewDistanceTable, но паникует на ошибке.
// Только для статических таблиц, объявленных в коде.
func MustDistanceTable(groups []Group) *DistanceTable {
	t, err := NewDistanceTable(groups)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup возвращает расстояние до района по плоскому индексу
func (t *DistanceTable) Lookup(item string) (float64, bool) {
	miles, ok := t.flat[item]
	return miles, ok
}

// GroupOf возвращает группу, которой принадлежит район
func (t *DistanceTable) GroupOf(item string) (string, bool) {
	g, ok := t.owner[item]
	return g, ok
}

// HasGroup проверяет наличие группы
func (t *DistanceTable) HasGroup(group string) bool {
	_, ok := t.byGroup[group]
	return ok
}

// GroupNames возвращает имена групп в порядке объявления
func (t *DistanceTable) GroupNames() []string {
	names := make([]string, 0, len(t.groups))
	for _, g := range t.groups {
		names = append(names, g.Name)
	}
	return names
}

// ItemNames возвращает районы группы в порядке объявления
func (t *DistanceTable) ItemNames(group string) []string {
	idx, ok := t.byGroup[group]
	if !ok {
		return nil
	}
	items := t.groups[idx].Items
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

// Groups возвращает копию содержимого таблицы
func (t *DistanceTable) Groups() []Group {
	out := make([]Group, 0, len(t.groups))
	for _, g := range t.groups {
		items := make([]Item, len(g.Items))
		copy(items, g.Items)
		out = append(out, Group{Name: g.Name, Items: items})
	}
	return out
}

// Len - общее число районов
func (t *DistanceTable) Len() int {
	return len(t.flat)
}
