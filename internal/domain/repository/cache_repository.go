package repository

import (
	"context"
	"time"

	"github.com/nyc-safety-calculator/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetResult получает результат расчёта, nil при промахе
	GetResult(ctx context.Context, key string) (*domain.CalculationResult, error)

	// SetResult сохраняет результат расчёта
	SetResult(ctx context.Context, key string, result *domain.CalculationResult, ttl time.Duration) error

	// Health проверяет доступность кеша
	Health(ctx context.Context) error
}
