package domain

// Selection - выбранные округ и район. Нулевое значение - ничего не выбрано.
type Selection struct {
	Group string `json:"group"`
	Item  string `json:"item"`
}

// IsEmpty - район не выбран
func (s Selection) IsEmpty() bool {
	return s.Item == ""
}

// Label - подпись вида "Brooklyn > Coney Island"
func (s Selection) Label() string {
	if s.IsEmpty() {
		return ""
	}
	return s.Group + " > " + s.Item
}
