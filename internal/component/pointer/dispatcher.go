// Package pointer - глобальная рассылка событий нажатия указателя.
//
// Аналог document-level слушателя: компонент подписывается при монтировании,
// отписывается при размонтировании и сам решает, попало ли нажатие в его область.
// Dispatcher не потокобезопасен и используется из одного цикла событий.
package pointer

// Region - идентификатор области, которой владеет компонент
type Region string

// Event - нажатие указателя. Path - цепочка областей от цели к корню,
// как при всплытии события в DOM.
type Event struct {
	Path []Region
	X    int
	Y    int
}

// Within проверяет, попадает ли событие в область r
func (e Event) Within(r Region) bool {
	for _, p := range e.Path {
		if p == r {
			return true
		}
	}
	return false
}

// At - событие с одной целевой областью
func At(target Region, x, y int) Event {
	if target == "" {
		return Event{X: x, Y: y}
	}
	return Event{Path: []Region{target}, X: x, Y: y}
}

// Listener - обработчик нажатия
type Listener func(Event)

// Dispatcher хранит подписчиков на нажатия
type Dispatcher struct {
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewDispatcher создает пустой Dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[int]Listener),
	}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки.
// Повторный вызов отписки ничего не делает.
func (d *Dispatcher) Subscribe(l Listener) (unsubscribe func()) {
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	d.order = append(d.order, id)

	return func() {
		if _, ok := d.listeners[id]; !ok {
			return
		}
		delete(d.listeners, id)
		for i, v := range d.order {
			if v == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch рассылает событие подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(ev Event) {
	ids := make([]int, len(d.order))
	copy(ids, d.order)

	for _, id := range ids {
		// подписчик мог отписаться во время рассылки
		if l, ok := d.listeners[id]; ok {
			l(ev)
		}
	}
}

// Listeners - число активных подписчиков
func (d *Dispatcher) Listeners() int {
	return len(d.listeners)
}
