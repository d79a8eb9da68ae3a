package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/domain"
	apperrors "github.com/nyc-safety-calculator/internal/pkg/errors"
	"github.com/nyc-safety-calculator/internal/repository/cache"
	"github.com/nyc-safety-calculator/internal/usecase"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

func TestCalculatorUseCase_Table(t *testing.T) {
	uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), cache.NewNoopRepository(), zap.NewNop(), time.Hour)

	resp := uc.Table()
	assert.Equal(t, 39, resp.Total)
	require.Len(t, resp.Groups, 6)
	assert.Equal(t, "Manhattan", resp.Groups[0].Name)
}

func TestCalculatorUseCase_Calculate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("cache miss computes and stores", func(t *testing.T) {
		repo := &MockCacheRepository{}
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), repo, logger, time.Hour)

		repo.On("GetResult", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		repo.On("SetResult", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(r *domain.CalculationResult) bool {
			return r.Item == "Coney Island"
		}), time.Hour).Return(nil)

		resp, err := uc.Calculate(ctx, dto.CalculateRequest{Item: "Coney Island"})

		require.NoError(t, err)
		assert.Equal(t, "Coney Island", resp.Item)
		assert.Equal(t, "Brooklyn", resp.Group, "group resolved from table")
		assert.Equal(t, 12.0, resp.DistanceMiles)
		assert.Equal(t, "91.7% reduction", resp.Display)
		assert.False(t, resp.Cached)
		repo.AssertExpectations(t)
	})

	t.Run("cache hit skips compute", func(t *testing.T) {
		repo := &MockCacheRepository{}
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), repo, logger, time.Hour)

		cached := &domain.CalculationResult{Item: "Chelsea", DistanceMiles: 1, PercentReduction: 0}
		repo.On("GetResult", ctx, mock.AnythingOfType("string")).Return(cached, nil)

		resp, err := uc.Calculate(ctx, dto.CalculateRequest{Group: "Manhattan", Item: "Chelsea"})

		require.NoError(t, err)
		assert.True(t, resp.Cached)
		assert.Equal(t, "0.0% reduction", resp.Display)
		repo.AssertNotCalled(t, "SetResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache errors do not fail calculation", func(t *testing.T) {
		repo := &MockCacheRepository{}
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), repo, logger, time.Hour)

		repo.On("GetResult", ctx, mock.Anything).Return(nil, errors.New("connection refused"))
		repo.On("SetResult", ctx, mock.Anything, mock.Anything, time.Hour).Return(errors.New("connection refused"))

		resp, err := uc.Calculate(ctx, dto.CalculateRequest{Item: "Harlem"})

		require.NoError(t, err)
		assert.Equal(t, 9.0, resp.DistanceMiles)
	})

	t.Run("unknown item is zero, not an error", func(t *testing.T) {
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), cache.NewNoopRepository(), logger, time.Hour)

		resp, err := uc.Calculate(ctx, dto.CalculateRequest{Item: "Atlantis"})

		require.NoError(t, err)
		assert.Zero(t, resp.DistanceMiles)
		assert.Zero(t, resp.TripRisk)
		assert.Zero(t, resp.PercentReduction)
		assert.Empty(t, resp.Group)
	})

	t.Run("missing item", func(t *testing.T) {
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), cache.NewNoopRepository(), logger, time.Hour)

		resp, err := uc.Calculate(ctx, dto.CalculateRequest{Group: "Manhattan"})

		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, apperrors.ErrItemRequired))
	})

	t.Run("cache key includes model and distance", func(t *testing.T) {
		repo := &MockCacheRepository{}
		uc := usecase.NewCalculatorUseCase(domain.NYCTable(), domain.DefaultRiskModel(), repo, logger, time.Hour)

		repo.On("GetResult", ctx, "247:2e+10:1:12:Coney Island").Return(nil, nil)
		repo.On("SetResult", ctx, "247:2e+10:1:12:Coney Island", mock.Anything, time.Hour).Return(nil)

		_, err := uc.Calculate(ctx, dto.CalculateRequest{Item: "Coney Island"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
