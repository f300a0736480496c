package matching

import (
	"sort"
)

// GroupBy ключ группировки кандидатов при ранжировании
type GroupBy string

const (
	// GroupByName группировка по отображаемому названию трубки
	GroupByName GroupBy = "name"
	// GroupByType группировка по типу трубки
	GroupByType GroupBy = "type"
)

// RankingPolicy параметры отбора и ранжирования кандидатов внутри группы.
// Скрывать или показывать непроходящие строки - продуктовый выбор,
// поэтому он кодируется флагом, а не зашивается в алгоритм.
type RankingPolicy struct {
	// PerDiameterBest предварительно оставить по одному лучшему кандидату
	// на каждый различимый внутренний диаметр: при равном диаметре
	// побеждает меньший наружный (самая безопасная модель этого размера)
	PerDiameterBest bool `json:"per_diameter_best"`
	// Limit ограничение числа отобранных кандидатов; 0 - без ограничения
	Limit int `json:"limit"`
	// PassingOnly исключить no-fit и unknown до отбора; иначе они
	// сохраняются с показом своего состояния
	PassingOnly bool `json:"passing_only"`
}

// Candidate кандидат ранжирования: результат сопоставления, аннотированный
// ключом группы и диаметрами трубки
type Candidate struct {
	GroupKey string
	// InnerMM внутренний диаметр трубки (номинальный размер ЭТТ)
	InnerMM float64
	// InnerOK признак распознанного внутреннего диаметра
	InnerOK bool
	// OuterMM наружный диаметр трубки
	OuterMM float64
	Result  FitResult
}

// SelectTop отбирает кандидатов одной группы: опциональная редукция до
// лучшего на диаметр, затем N наибольших внутренних диаметров с разрешением
// ничьих в пользу меньшего наружного
func SelectTop(candidates []Candidate, policy RankingPolicy) []Candidate {
	selected := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if policy.PassingOnly && !candidate.Result.Verdict.Passing() {
			continue
		}
		selected = append(selected, candidate)
	}

	if policy.PerDiameterBest {
		selected = reducePerDiameter(selected)
	}

	sortCandidates(selected)

	if policy.Limit > 0 && len(selected) > policy.Limit {
		selected = selected[:policy.Limit]
	}

	return selected
}

// reducePerDiameter оставляет по одному кандидату на различимый внутренний
// диаметр: с наименьшим наружным диаметром
func reducePerDiameter(candidates []Candidate) []Candidate {
	best := make(map[float64]Candidate, len(candidates))
	order := make([]float64, 0, len(candidates))

	for _, candidate := range candidates {
		if !candidate.InnerOK {
			// Кандидаты без распознанного диаметра не участвуют в редукции,
			// но и не теряются
			continue
		}
		current, exists := best[candidate.InnerMM]
		if !exists || candidate.OuterMM < current.OuterMM {
			if !exists {
				order = append(order, candidate.InnerMM)
			}
			best[candidate.InnerMM] = candidate
		}
	}

	reduced := make([]Candidate, 0, len(candidates))
	for _, inner := range order {
		reduced = append(reduced, best[inner])
	}
	for _, candidate := range candidates {
		if !candidate.InnerOK {
			reduced = append(reduced, candidate)
		}
	}
	return reduced
}

// sortCandidates упорядочивает кандидатов: внутренний диаметр по убыванию,
// наружный по возрастанию, затем название модели для стабильности порядка
func sortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		left, right := candidates[i], candidates[j]
		if left.InnerOK != right.InnerOK {
			// Нераспознанные диаметры в конец
			return left.InnerOK
		}
		if left.InnerMM != right.InnerMM {
			return left.InnerMM > right.InnerMM
		}
		if left.OuterMM != right.OuterMM {
			return left.OuterMM < right.OuterMM
		}
		return left.Result.ETT.Name < right.Result.ETT.Name
	})
}

// SortGroups упорядочивает итоговый список по ключу группы
// (лексикографически), затем порядком внутри группы, уже заданным SelectTop.
// Полный порядок стабилен для воспроизводимого вывода.
func SortGroups(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].GroupKey != candidates[j].GroupKey {
			return candidates[i].GroupKey < candidates[j].GroupKey
		}
		return false
	})
}
