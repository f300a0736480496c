package services

import (
	"fmt"
	"math"

	"airwayserver/catalog"
	"airwayserver/matching"
	apperrors "airwayserver/server/errors"
)

// MatchingService сервис подбора совместимых трубок для выбранного воздуховода
type MatchingService struct {
	catalogService   *CatalogService
	defaultTolerance float64
}

// NewMatchingService создает сервис подбора с допуском по умолчанию
func NewMatchingService(catalogService *CatalogService, defaultTolerance float64) *MatchingService {
	return &MatchingService{
		catalogService:   catalogService,
		defaultTolerance: matching.ClampTolerance(defaultTolerance),
	}
}

// EvaluateRequest запрос подбора: выбор пользователя плюс параметры политики
type EvaluateRequest struct {
	Brand catalog.BrandKey `json:"brand"`
	// Size опциональный номинальный размер воздуховода
	Size *float64 `json:"size,omitempty"`
	// Tubes опциональный фильтр по каноническим ключам названий трубок
	Tubes []string `json:"tubes,omitempty"`
	// ToleranceMM допуск в мм; nil - допуск сервера по умолчанию
	ToleranceMM *float64 `json:"tolerance_mm,omitempty"`
	// Strict строгий режим: зазор меньше допуска считается no-fit
	Strict bool `json:"strict,omitempty"`
	// PassingOnly скрыть непроходящие строки
	PassingOnly bool `json:"passing_only,omitempty"`
	// PerDiameterBest оставить по одной лучшей модели на каждый размер трубки
	PerDiameterBest bool `json:"per_diameter_best,omitempty"`
	// Limit верхняя граница числа строк на группу; 0 - без ограничения
	Limit int `json:"limit,omitempty"`
	// GroupBy группировка строк: "name" (по умолчанию) или "type"
	GroupBy string `json:"group_by,omitempty"`
}

// DefaultTolerance возвращает допуск сервера по умолчанию
func (s *MatchingService) DefaultTolerance() float64 {
	return s.defaultTolerance
}

// resolvePolicy превращает запрос в политику построения представления
func (s *MatchingService) resolvePolicy(req EvaluateRequest) (matching.ViewPolicy, error) {
	policy := matching.DefaultViewPolicy()
	policy.Evaluator.StrictTolerance = req.Strict
	policy.Ranking.PassingOnly = req.PassingOnly
	policy.Ranking.PerDiameterBest = req.PerDiameterBest
	policy.Ranking.Limit = req.Limit

	switch req.GroupBy {
	case "", string(matching.GroupByName):
		policy.GroupBy = matching.GroupByName
	case string(matching.GroupByType):
		policy.GroupBy = matching.GroupByType
	default:
		return policy, apperrors.NewValidationError(
			fmt.Sprintf("неизвестная группировка %q, допустимы name и type", req.GroupBy), nil)
	}

	return policy, nil
}

// resolveTolerance валидирует допуск запроса, nil заменяется значением
// сервера по умолчанию
func (s *MatchingService) resolveTolerance(req EvaluateRequest) (float64, error) {
	if req.ToleranceMM == nil {
		return s.DefaultTolerance(), nil
	}

	tolerance := *req.ToleranceMM
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return 0, apperrors.NewValidationError("допуск должен быть конечным числом", nil)
	}
	if tolerance < 0 {
		return 0, apperrors.NewValidationError("допуск не может быть отрицательным", nil)
	}
	return tolerance, nil
}

// Evaluate выполняет подбор трубок по запросу.
// Отсутствие совместимых устройств - валидный результат, а не ошибка.
func (s *MatchingService) Evaluate(req EvaluateRequest) (matching.ResultView, error) {
	if req.Brand.IsZero() {
		return matching.ResultView{}, apperrors.NewValidationError("бренд воздуховода обязателен", nil)
	}
	if req.Limit < 0 {
		return matching.ResultView{}, apperrors.NewValidationError("limit не может быть отрицательным", nil)
	}

	tolerance, err := s.resolveTolerance(req)
	if err != nil {
		return matching.ResultView{}, err
	}

	policy, err := s.resolvePolicy(req)
	if err != nil {
		return matching.ResultView{}, err
	}

	catalogs, index := s.catalogService.Snapshot()
	selection := matching.Selection{
		Brand: req.Brand,
		Size:  req.Size,
		Tubes: req.Tubes,
	}

	return matching.BuildView(index, catalogs, selection, tolerance, policy), nil
}

// WorstCaseSummary сводка худшего случая для выбранного воздуховода
type WorstCaseSummary struct {
	Model        string                  `json:"model"`
	Manufacturer string                  `json:"manufacturer"`
	InnerMM      string                  `json:"inner_mm"`
	Tolerance    float64                 `json:"tolerance"`
	Rows         []matching.WorstCaseRow `json:"rows"`
}

// WorstCase строит консервативную сводку по номинальным размерам трубок:
// для каждого размера берется наибольший наружный диаметр среди моделей
func (s *MatchingService) WorstCase(req EvaluateRequest) (WorstCaseSummary, error) {
	if req.Brand.IsZero() {
		return WorstCaseSummary{}, apperrors.NewValidationError("бренд воздуховода обязателен", nil)
	}

	tolerance, err := s.resolveTolerance(req)
	if err != nil {
		return WorstCaseSummary{}, err
	}

	catalogs, index := s.catalogService.Snapshot()
	selection := matching.Selection{Brand: req.Brand, Size: req.Size}

	sad, found := matching.SelectSAD(index, catalogs.SADs, selection)
	if !found {
		return WorstCaseSummary{}, apperrors.NewNotFoundError("воздуховод не найден в каталоге", nil)
	}

	canonicalizer := index.Canonicalizer()
	summary := WorstCaseSummary{
		Model:        canonicalizer.DisplayName(sad.Name),
		Manufacturer: canonicalizer.DisplayManufacturer(sad.Manufacturer),
		InnerMM:      "n/a",
		Tolerance:    matching.ClampTolerance(tolerance),
		Rows: matching.WorstCaseBySize(catalogs.ETTs, sad.InternalMM, tolerance,
			matching.EvaluatorPolicy{StrictTolerance: req.Strict}),
	}
	if inner, ok := sad.InternalMM.Value(); ok {
		summary.InnerMM = fmt.Sprintf("%.2f", inner)
	}

	return summary, nil
}
