package usecase

import (
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/component/calculator"
	"github.com/nyc-safety-calculator/internal/component/pointer"
	"github.com/nyc-safety-calculator/internal/domain"
	"github.com/nyc-safety-calculator/internal/pkg/errors"
	"github.com/nyc-safety-calculator/internal/pkg/validator"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

// RenderPage монтирует новый экземпляр калькулятора, восстанавливает состояние
// из запроса, применяет одно действие и размонтирует компонент.
// Между запросами сервер ничего не хранит.
func (uc *CalculatorUseCase) RenderPage(req dto.PageRequest) (*dto.PageResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"fields": validator.FailedFields(err),
		})
	}
	if req.Action == dto.ActionSelect && req.TargetItem == "" {
		return nil, errors.ErrItemRequired
	}

	doc := pointer.NewDispatcher()
	calc := calculator.New(uc.table, uc.model, uc.logger)
	calc.Mount(doc)
	defer calc.Unmount()

	calc.Menu().Restore(req.State.Open, req.State.OpenGroups)
	calc.Restore(domain.Selection{Group: req.State.Group, Item: req.State.Item}, req.State.ResultItem)

	switch req.Action {
	case dto.ActionToggle:
		calc.Menu().ToggleOpen()
	case dto.ActionGroup:
		calc.Menu().ToggleGroup(req.TargetGroup)
	case dto.ActionSelect:
		calc.Menu().SelectItem(req.TargetGroup, req.TargetItem)
	case dto.ActionOutside:
		doc.Dispatch(pointer.At("page", 0, 0))
	case dto.ActionCalculate:
		// кнопка неактивна без выбора; Calculate проверяет это ещё раз
		if calc.CanCalculate() {
			calc.Calculate()
		}
	}

	uc.logger.Debug("Page rendered",
		zap.String("action", string(req.Action)),
		zap.String("state", calc.State().String()))

	return &dto.PageResponse{
		View:  calc.View(),
		State: snapshot(calc),
		Phase: calc.State().String(),
	}, nil
}

func snapshot(calc *calculator.Calculator) dto.PageState {
	sel := calc.Selection()
	st := dto.PageState{
		Open:       calc.Menu().IsOpen(),
		OpenGroups: calc.Menu().OpenGroups(),
		Group:      sel.Group,
		Item:       sel.Item,
	}
	if r := calc.Result(); r != nil {
		st.ResultItem = r.Item
	}
	return st
}
