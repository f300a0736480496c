package matching

import (
	"fmt"
	"sort"

	"airwayserver/catalog"
)

// WorstCaseRow консервативная оценка для номинального размера трубки:
// наибольший наружный диаметр среди всех моделей этого размера.
// Используется, когда конкретная модель трубки не выбрана.
type WorstCaseRow struct {
	Size       string  `json:"size"`
	MaxOuterMM string  `json:"max_outer_mm"`
	Models     int     `json:"models"`
	Verdict    Verdict `json:"verdict"`
}

// WorstCaseBySize строит сводку худшего случая по номинальным размерам
// трубок против внутреннего просвета выбранного воздуховода.
// Трубки без распознанных диаметров исключаются из сводки.
func WorstCaseBySize(etts []catalog.DeviceRecord, sadInnerMM catalog.FlexFloat, tolerance float64, policy EvaluatorPolicy) []WorstCaseRow {
	tolerance = ClampTolerance(tolerance)

	type aggregate struct {
		maxOuter float64
		models   int
	}

	bySize := make(map[float64]*aggregate)
	order := make([]float64, 0)

	for _, ett := range etts {
		inner, innerOK := ett.InternalMM.Value()
		outer, outerOK := ett.ExternalMM.Value()
		if !innerOK || !outerOK {
			continue
		}

		agg, exists := bySize[inner]
		if !exists {
			agg = &aggregate{maxOuter: outer}
			bySize[inner] = agg
			order = append(order, inner)
		} else if outer > agg.maxOuter {
			agg.maxOuter = outer
		}
		agg.models++
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(order)))

	rows := make([]WorstCaseRow, 0, len(order))
	for _, size := range order {
		agg := bySize[size]

		_, verdict := Evaluate(sadInnerMM, catalog.NewFlexFloat(agg.maxOuter), tolerance, policy)
		rows = append(rows, WorstCaseRow{
			Size:       fmt.Sprintf("%.1f", size),
			MaxOuterMM: fmt.Sprintf("%.2f", agg.maxOuter),
			Models:     agg.models,
			Verdict:    verdict,
		})
	}

	return rows
}
