package matching

import (
	"testing"
)

func makeCandidate(inner, outer float64, verdict Verdict) Candidate {
	return Candidate{
		GroupKey: "group",
		InnerMM:  inner,
		InnerOK:  true,
		OuterMM:  outer,
		Result:   FitResult{Verdict: verdict},
	}
}

// TestSelectTop_PerDiameterBestThenTop2 проверяет политику "лучший на
// диаметр, затем два наибольших": из (7.5,10.2),(7.5,9.8),(7.0,9.0)
// остаются (7.5,9.8) и (7.0,9.0) в этом порядке
func TestSelectTop_PerDiameterBestThenTop2(t *testing.T) {
	candidates := []Candidate{
		makeCandidate(7.5, 10.2, VerdictFit),
		makeCandidate(7.5, 9.8, VerdictFit),
		makeCandidate(7.0, 9.0, VerdictFit),
	}

	selected := SelectTop(candidates, RankingPolicy{PerDiameterBest: true, Limit: 2})

	if len(selected) != 2 {
		t.Fatalf("отобрано %d кандидатов, want 2", len(selected))
	}
	if selected[0].InnerMM != 7.5 || selected[0].OuterMM != 9.8 {
		t.Errorf("первый = (%v, %v), want (7.5, 9.8)", selected[0].InnerMM, selected[0].OuterMM)
	}
	if selected[1].InnerMM != 7.0 || selected[1].OuterMM != 9.0 {
		t.Errorf("второй = (%v, %v), want (7.0, 9.0)", selected[1].InnerMM, selected[1].OuterMM)
	}
}

// TestSelectTop_TieBreakBySmallestOuter проверяет разрешение ничьей по
// внутреннему диаметру в пользу меньшего наружного
func TestSelectTop_TieBreakBySmallestOuter(t *testing.T) {
	candidates := []Candidate{
		makeCandidate(7.5, 10.2, VerdictFit),
		makeCandidate(7.5, 9.8, VerdictFit),
	}

	selected := SelectTop(candidates, RankingPolicy{Limit: 1})

	if len(selected) != 1 || selected[0].OuterMM != 9.8 {
		t.Fatalf("отобран %+v, want OD 9.8", selected)
	}
}

// TestSelectTop_PassingOnly проверяет режим исключения непроходящих строк
func TestSelectTop_PassingOnly(t *testing.T) {
	candidates := []Candidate{
		makeCandidate(8.0, 11.0, VerdictNoFit),
		makeCandidate(7.5, 9.8, VerdictFit),
		makeCandidate(7.0, 9.9, VerdictUnknown),
		makeCandidate(6.5, 9.0, VerdictTight),
	}

	selected := SelectTop(candidates, RankingPolicy{PassingOnly: true})

	if len(selected) != 2 {
		t.Fatalf("отобрано %d, want 2 (fit и tight)", len(selected))
	}
	for _, candidate := range selected {
		if !candidate.Result.Verdict.Passing() {
			t.Errorf("непроходящий вердикт %v не исключен", candidate.Result.Verdict)
		}
	}
}

// TestSelectTop_RetainNonPassing проверяет режим показа непроходящих строк
// с сохранением их состояния
func TestSelectTop_RetainNonPassing(t *testing.T) {
	candidates := []Candidate{
		makeCandidate(8.0, 11.0, VerdictNoFit),
		makeCandidate(7.5, 9.8, VerdictFit),
	}

	selected := SelectTop(candidates, RankingPolicy{})

	if len(selected) != 2 {
		t.Fatalf("отобрано %d, want 2", len(selected))
	}
	// Порядок: внутренний диаметр по убыванию независимо от вердикта
	if selected[0].InnerMM != 8.0 {
		t.Errorf("первый = %v, want 8.0", selected[0].InnerMM)
	}
}

// TestSelectTop_Empty проверяет отбор над пустым входом
func TestSelectTop_Empty(t *testing.T) {
	if selected := SelectTop(nil, RankingPolicy{Limit: 2}); len(selected) != 0 {
		t.Errorf("SelectTop(nil) = %+v, want empty", selected)
	}
}

// TestSelectTop_Stable проверяет стабильность полного порядка при
// идентичных ключах для воспроизводимого вывода
func TestSelectTop_Stable(t *testing.T) {
	a := makeCandidate(7.5, 9.8, VerdictFit)
	a.Result.ETT.Name = "Alpha"
	b := makeCandidate(7.5, 9.8, VerdictFit)
	b.Result.ETT.Name = "Beta"

	first := SelectTop([]Candidate{a, b}, RankingPolicy{})
	second := SelectTop([]Candidate{a, b}, RankingPolicy{})

	for i := range first {
		if first[i].Result.ETT.Name != second[i].Result.ETT.Name {
			t.Fatalf("порядок не воспроизводим: %v != %v", first[i], second[i])
		}
	}
	if first[0].Result.ETT.Name != "Alpha" {
		t.Errorf("ничья по названию разрешена неверно: %v", first[0].Result.ETT.Name)
	}
}
