package cache

import (
	"context"
	"time"

	"github.com/nyc-safety-calculator/internal/domain"
	"github.com/nyc-safety-calculator/internal/domain/repository"
)

// noopRepository используется, когда Redis выключен: всегда промах
type noopRepository struct{}

// NewNoopRepository создает кеш, который ничего не хранит
func NewNoopRepository() repository.CacheRepository {
	return noopRepository{}
}

func (noopRepository) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (noopRepository) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopRepository) Delete(context.Context, string) error { return nil }

func (noopRepository) GetResult(context.Context, string) (*domain.CalculationResult, error) {
	return nil, nil
}

func (noopRepository) SetResult(context.Context, string, *domain.CalculationResult, time.Duration) error {
	return nil
}

func (noopRepository) Health(context.Context) error { return nil }
