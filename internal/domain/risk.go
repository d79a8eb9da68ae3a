package domain

import (
	"fmt"
	"math"
)

// Статистика ДТП Нью-Йорка за 2024 год
const (
	DefaultAnnualFatalities   = 247
	DefaultAnnualVehicleMiles = 20_000_000_000
	DefaultLocalTripMiles     = 1.0
)

// RiskModel - параметры расчёта риска поездки
type RiskModel struct {
	AnnualFatalities   float64
	AnnualVehicleMiles float64
	LocalTripMiles     float64
}

// DefaultRiskModel возвращает модель с константами NYC
func DefaultRiskModel() RiskModel {
	return RiskModel{
		AnnualFatalities:   DefaultAnnualFatalities,
		AnnualVehicleMiles: DefaultAnnualVehicleMiles,
		LocalTripMiles:     DefaultLocalTripMiles,
	}
}

// BaseFatalityRate - смертей на милю пробега
func (m RiskModel) BaseFatalityRate() float64 {
	return m.AnnualFatalities / m.AnnualVehicleMiles
}

// CalculationResult - результат расчёта для выбранного района.
// Всегда пересчитывается целиком.
type CalculationResult struct {
	Item             string  `json:"item"`
	DistanceMiles    float64 `json:"distance_miles"`
	LocalRisk        float64 `json:"local_risk"`
	TripRisk         float64 `json:"trip_risk"`
	PercentReduction float64 `json:"percent_reduction"`
}

// Calculate считает снижение риска для района. Неизвестный район даёт
// расстояние 0, а нечисловой процент (деление на 0) заменяется на 0.
func (m RiskModel) Calculate(table *DistanceTable, item string) CalculationResult {
	base := m.BaseFatalityRate()

	var distance float64
	if table != nil {
		distance, _ = table.Lookup(item)
	}

	local := m.LocalTripMiles * base
	trip := distance * base

	percent := (trip - local) / trip * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		percent = 0
	}

	return CalculationResult{
		Item:             item,
		DistanceMiles:    distance,
		LocalRisk:        local,
		TripRisk:         trip,
		PercentReduction: percent,
	}
}

// Display форматирует процент для панели результата, например "91.7% reduction"
func (r CalculationResult) Display() string {
	return FormatReduction(r.PercentReduction)
}

// FormatReduction - один знак после запятой и суффикс "% reduction"
func FormatReduction(percent float64) string {
	return fmt.Sprintf("%.1f%% reduction", percent)
}
