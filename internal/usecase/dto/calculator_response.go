package dto

import (
	"github.com/nyc-safety-calculator/internal/component/calculator"
	"github.com/nyc-safety-calculator/internal/domain"
)

// TableResponse - таблица расстояний
type TableResponse struct {
	Groups []domain.Group `json:"groups"`
	Total  int            `json:"total"`
}

// CalculateResponse - результат расчёта
type CalculateResponse struct {
	domain.CalculationResult
	Group   string `json:"group,omitempty"`
	Display string `json:"display"`
	Cached  bool   `json:"-"`
}

// PageResponse - данные для отрисовки страницы и состояние для следующих ссылок
type PageResponse struct {
	View  calculator.View
	State PageState
	Phase string
}
