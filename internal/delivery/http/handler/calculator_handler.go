package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/pkg/errors"
	"github.com/nyc-safety-calculator/internal/pkg/utils"
	"github.com/nyc-safety-calculator/internal/usecase"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

// CalculatorHandler - обработчик API калькулятора
type CalculatorHandler struct {
	calculatorUC *usecase.CalculatorUseCase
	logger       *zap.Logger
}

// NewCalculatorHandler - создание нового CalculatorHandler
func NewCalculatorHandler(calculatorUC *usecase.CalculatorUseCase, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorUC: calculatorUC,
		logger:       logger,
	}
}

// GetTable godoc
// @Summary Get distance table
// @Description Возвращает округа и районы с расстояниями в милях
// @Tags Calculator
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TableResponse}
// @Router /api/v1/table [get]
func (h *CalculatorHandler) GetTable(c *fiber.Ctx) error {
	table := h.calculatorUC.Table()

	return utils.SendSuccess(c, table, &utils.Meta{
		Total: table.Total,
	})
}

// Calculate godoc
// @Summary Calculate safety improvement
// @Description Считает снижение риска поездки для района. Неизвестный район даёт 0.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Район"
// @Success 200 {object} utils.SuccessResponse{data=dto.CalculateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/calculate [post]
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid request body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.calculatorUC.Calculate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Cached: result.Cached,
	})
}
