package dto

// CalculateRequest - запрос на расчёт для района
type CalculateRequest struct {
	Group string `json:"group"`
	Item  string `json:"item" validate:"required"`
}

// PageAction - действие пользователя на странице
type PageAction string

const (
	ActionNone      PageAction = ""
	ActionToggle    PageAction = "toggle"
	ActionGroup     PageAction = "group"
	ActionSelect    PageAction = "select"
	ActionOutside   PageAction = "outside"
	ActionCalculate PageAction = "calculate"
)

// PageState - состояние компонента, переданное в параметрах запроса
type PageState struct {
	Open       bool
	OpenGroups []string
	Group      string
	Item       string
	ResultItem string
}

// PageRequest - состояние плюс одно действие
type PageRequest struct {
	State       PageState
	Action      PageAction `validate:"omitempty,oneof=toggle group select outside calculate"`
	TargetGroup string
	TargetItem  string
}
