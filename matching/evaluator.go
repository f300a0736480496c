package matching

import (
	"airwayserver/catalog"
)

// Verdict закрытый набор состояний геометрической совместимости.
// Система классифицирует только геометрию прохождения и не дает
// клинических рекомендаций.
type Verdict string

const (
	// VerdictFit зазор не меньше допуска: трубка проходит свободно
	VerdictFit Verdict = "fit"
	// VerdictTight зазор неотрицательный, но меньше допуска
	VerdictTight Verdict = "tight"
	// VerdictNoFit трубка физически не проходит (или зазор меньше допуска
	// в строгом режиме)
	VerdictNoFit Verdict = "no-fit"
	// VerdictUnknown один из диаметров не распознан; никогда не
	// смешивается с no-fit
	VerdictUnknown Verdict = "unknown"
)

// Passing сообщает, что вердикт означает проходимость трубки
func (v Verdict) Passing() bool {
	return v == VerdictFit || v == VerdictTight
}

// EvaluatorPolicy параметры классификатора совместимости.
// Наблюдавшиеся варианты продукта различаются трактовкой полосы допуска,
// поэтому выбор кодируется явным флагом, а не отдельной реализацией.
type EvaluatorPolicy struct {
	// StrictTolerance строгий режим: зазор меньше допуска считается no-fit,
	// полоса tight отсутствует
	StrictTolerance bool `json:"strict_tolerance"`
}

// FitResult результат классификации пары (воздуховод, трубка)
type FitResult struct {
	SAD       catalog.DeviceRecord `json:"sad"`
	ETT       catalog.DeviceRecord `json:"ett"`
	Tolerance float64              `json:"tolerance"`
	Gap       float64              `json:"gap"`
	Verdict   Verdict              `json:"verdict"`
}

// ClampTolerance приводит допуск к неотрицательному значению.
// Отрицательный допуск не должен достигать классификатора.
func ClampTolerance(tolerance float64) float64 {
	if tolerance < 0 {
		return 0
	}
	return tolerance
}

// Classify единственный авторитетный классификатор зазора.
// Все вызывающие места обязаны проходить через него, а не выводить пороги
// заново. Вход считается конечным; допуск неотрицательным.
//
//	fit    - gap >= T (включительно, в том числе вырожденный случай T = 0)
//	tight  - 0 <= gap < T (только в нестрогом режиме)
//	no-fit - gap < 0, либо gap < T в строгом режиме
func Classify(gap, tolerance float64, policy EvaluatorPolicy) Verdict {
	if gap >= tolerance {
		return VerdictFit
	}
	if gap < 0 || policy.StrictTolerance {
		return VerdictNoFit
	}
	return VerdictTight
}

// Evaluate классифицирует тройку (внутренний диаметр, наружный диаметр,
// допуск). Нераспознанный диаметр дает unknown до любых сравнений порогов.
// Побочных эффектов нет.
func Evaluate(innerMM, outerMM catalog.FlexFloat, tolerance float64, policy EvaluatorPolicy) (float64, Verdict) {
	tolerance = ClampTolerance(tolerance)

	inner, innerOK := innerMM.Value()
	outer, outerOK := outerMM.Value()
	if !innerOK || !outerOK {
		return 0, VerdictUnknown
	}

	gap := inner - outer
	return gap, Classify(gap, tolerance, policy)
}

// EvaluatePair классифицирует пару записей каталога: внутренний просвет
// воздуховода против наружного диаметра трубки
func EvaluatePair(sad, ett catalog.DeviceRecord, tolerance float64, policy EvaluatorPolicy) FitResult {
	tolerance = ClampTolerance(tolerance)
	gap, verdict := Evaluate(sad.InternalMM, ett.ExternalMM, tolerance, policy)

	return FitResult{
		SAD:       sad,
		ETT:       ett,
		Tolerance: tolerance,
		Gap:       gap,
		Verdict:   verdict,
	}
}
