package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/domain"
	"github.com/nyc-safety-calculator/internal/domain/repository"
	"github.com/nyc-safety-calculator/internal/pkg/errors"
	"github.com/nyc-safety-calculator/internal/pkg/validator"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

// CalculatorUseCase - расчёт снижения риска для API
type CalculatorUseCase struct {
	table     *domain.DistanceTable
	model     domain.RiskModel
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewCalculatorUseCase - создание нового CalculatorUseCase
func NewCalculatorUseCase(
	table *domain.DistanceTable,
	model domain.RiskModel,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CalculatorUseCase {
	return &CalculatorUseCase{
		table:     table,
		model:     model,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Table возвращает таблицу расстояний
func (uc *CalculatorUseCase) Table() *dto.TableResponse {
	return &dto.TableResponse{
		Groups: uc.table.Groups(),
		Total:  uc.table.Len(),
	}
}

// Calculate считает результат для района, используя кеш когда возможно.
// Неизвестный район не ошибка: расстояние и процент равны 0.
func (uc *CalculatorUseCase) Calculate(ctx context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrItemRequired.WithDetails(map[string]interface{}{
			"fields": validator.FailedFields(err),
		})
	}

	miles, known := uc.table.Lookup(req.Item)
	key := uc.cacheKey(req.Item, miles)

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetResult(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get result from cache", zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Result fetched from cache", zap.String("item", req.Item))
		return uc.response(req, *cached, true), nil
	}

	// 2. Считаем
	result := uc.model.Calculate(uc.table, req.Item)
	if !known {
		uc.logger.Debug("Unknown item, distance defaults to zero", zap.String("item", req.Item))
	}

	// 3. Кешируем; ошибка кеша не ломает расчёт
	if err := uc.cacheRepo.SetResult(ctx, key, &result, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache result", zap.Error(err))
	}

	return uc.response(req, result, false), nil
}

func (uc *CalculatorUseCase) response(req dto.CalculateRequest, r domain.CalculationResult, cached bool) *dto.CalculateResponse {
	group := req.Group
	if group == "" {
		group, _ = uc.table.GroupOf(req.Item)
	}
	return &dto.CalculateResponse{
		CalculationResult: r,
		Group:             group,
		Display:           r.Display(),
		Cached:            cached,
	}
}

// результат зависит только от модели и расстояния, они входят в ключ
func (uc *CalculatorUseCase) cacheKey(item string, miles float64) string {
	return fmt.Sprintf("%g:%g:%g:%g:%s",
		uc.model.AnnualFatalities,
		uc.model.AnnualVehicleMiles,
		uc.model.LocalTripMiles,
		miles,
		item,
	)
}
