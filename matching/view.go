package matching

import (
	"fmt"

	"airwayserver/catalog"
	"airwayserver/normalization"
)

// NoCandidatesMessage сигнал валидного пустого результата
const NoCandidatesMessage = "Нет совместимых устройств при текущем допуске"

// Selection выбор пользователя: бренд воздуховода, опциональный размер и
// опциональный фильтр по каноническим ключам названий трубок
type Selection struct {
	Brand catalog.BrandKey `json:"brand"`
	Size  *float64         `json:"size,omitempty"`
	Tubes []string         `json:"tubes,omitempty"`
}

// ViewPolicy полный набор параметров политики построения представления
type ViewPolicy struct {
	Evaluator EvaluatorPolicy `json:"evaluator"`
	Ranking   RankingPolicy   `json:"ranking"`
	GroupBy   GroupBy         `json:"group_by"`
}

// DefaultViewPolicy политика по умолчанию: нестрогий допуск, показ
// непроходящих строк, группировка по названию трубки без ограничения числа
func DefaultViewPolicy() ViewPolicy {
	return ViewPolicy{
		Evaluator: EvaluatorPolicy{StrictTolerance: false},
		Ranking:   RankingPolicy{PerDiameterBest: false, Limit: 0, PassingOnly: false},
		GroupBy:   GroupByName,
	}
}

// ResultRow строка результата для слоя представления.
// Размер в мм с одним знаком, наружный диаметр с двумя.
type ResultRow struct {
	Size         string  `json:"size"`
	Type         string  `json:"type"`
	OuterMM      string  `json:"outer_mm"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	Verdict      Verdict `json:"verdict"`
	GapMM        string  `json:"gap_mm,omitempty"`
}

// ResultView результат сопоставления для слоя представления
type ResultView struct {
	Rows      []ResultRow `json:"rows"`
	Tolerance float64     `json:"tolerance"`
	// Empty сигнал "нет совместимых устройств": ни одна строка не проходит
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

// BuildView чистое преобразование (каталоги, выбор, допуск) -> представление.
// Хост владеет подпиской и триггерами пересчета, ядро - только
// преобразованием; каждый вызов пересчитывает результат полностью.
func BuildView(idx *catalog.Index, catalogs catalog.Catalogs, selection Selection, tolerance float64, policy ViewPolicy) ResultView {
	tolerance = ClampTolerance(tolerance)

	view := ResultView{
		Rows:      []ResultRow{},
		Tolerance: tolerance,
	}

	sad, found := SelectSAD(idx, catalogs.SADs, selection)
	if !found {
		view.Empty = true
		view.Message = NoCandidatesMessage
		return view
	}

	tubeFilter := make(map[string]bool, len(selection.Tubes))
	for _, key := range selection.Tubes {
		tubeFilter[key] = true
	}

	canonicalizer := idx.Canonicalizer()
	groups := make(map[string][]Candidate)
	groupKeys := make([]string, 0)

	for _, ett := range catalogs.ETTs {
		nameKey := canonicalizer.CanonicalName(ett.Name)
		if len(tubeFilter) > 0 && !tubeFilter[nameKey] {
			continue
		}

		result := EvaluatePair(sad, ett, tolerance, policy.Evaluator)

		groupKey := canonicalizer.DisplayName(ett.Name)
		if policy.GroupBy == GroupByType {
			groupKey = ett.TubeType()
		}

		inner, innerOK := ett.InternalMM.Value()
		outer, _ := ett.ExternalMM.Value()

		if _, exists := groups[groupKey]; !exists {
			groupKeys = append(groupKeys, groupKey)
		}
		groups[groupKey] = append(groups[groupKey], Candidate{
			GroupKey: groupKey,
			InnerMM:  inner,
			InnerOK:  innerOK,
			OuterMM:  outer,
			Result:   result,
		})
	}

	selected := make([]Candidate, 0)
	for _, key := range groupKeys {
		selected = append(selected, SelectTop(groups[key], policy.Ranking)...)
	}
	SortGroups(selected)

	for _, candidate := range selected {
		view.Rows = append(view.Rows, buildRow(canonicalizer, candidate))
	}

	view.Empty = true
	for _, row := range view.Rows {
		if row.Verdict.Passing() {
			view.Empty = false
			break
		}
	}
	if view.Empty {
		view.Message = NoCandidatesMessage
	}

	return view
}

// SelectSAD выбирает запись воздуховода по бренду и размеру.
// При нескольких подходящих записях берется консервативная: с наименьшим
// распознанным внутренним диаметром.
func SelectSAD(idx *catalog.Index, sads []catalog.DeviceRecord, selection Selection) (catalog.DeviceRecord, bool) {
	records := idx.BrandRecords(sads, selection.Brand)
	if selection.Size != nil {
		filtered := make([]catalog.DeviceRecord, 0, len(records))
		for _, record := range records {
			size, ok := normalization.ParseNominalSize(record.Size.Raw)
			if ok && size == *selection.Size {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		return catalog.DeviceRecord{}, false
	}

	best := records[0]
	bestValue, bestOK := best.InternalMM.Value()
	for _, record := range records[1:] {
		value, ok := record.InternalMM.Value()
		if !ok {
			continue
		}
		if !bestOK || value < bestValue {
			best = record
			bestValue = value
			bestOK = true
		}
	}
	return best, true
}

// buildRow форматирует кандидата в строку представления
func buildRow(canonicalizer *normalization.Canonicalizer, candidate Candidate) ResultRow {
	ett := candidate.Result.ETT

	row := ResultRow{
		Size:         "n/a",
		Type:         ett.TubeType(),
		OuterMM:      "n/a",
		Model:        canonicalizer.DisplayName(ett.Name),
		Manufacturer: canonicalizer.DisplayManufacturer(ett.Manufacturer),
		Verdict:      candidate.Result.Verdict,
	}

	if candidate.InnerOK {
		row.Size = fmt.Sprintf("%.1f", candidate.InnerMM)
	}
	if outer, ok := ett.ExternalMM.Value(); ok {
		row.OuterMM = fmt.Sprintf("%.2f", outer)
	}
	if candidate.Result.Verdict != VerdictUnknown {
		row.GapMM = fmt.Sprintf("%.2f", candidate.Result.Gap)
	}

	return row
}
