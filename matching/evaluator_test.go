package matching

import (
	"encoding/json"
	"testing"

	"airwayserver/catalog"
)

// TestClassify_ToleranceBands проверяет границы полос классификации:
// fit тогда и только тогда, когда gap >= T; tight при 0 <= gap < T;
// no-fit при gap < 0
func TestClassify_ToleranceBands(t *testing.T) {
	lenient := EvaluatorPolicy{}

	tests := []struct {
		name      string
		gap       float64
		tolerance float64
		expected  Verdict
	}{
		{"gap above tolerance", 0.6, 0.5, VerdictFit},
		{"gap equals tolerance", 0.5, 0.5, VerdictFit},
		{"gap below tolerance", 0.4, 0.5, VerdictTight},
		{"gap zero", 0, 0.5, VerdictTight},
		{"gap negative", -0.1, 0.5, VerdictNoFit},
		{"zero tolerance zero gap", 0, 0, VerdictFit},
		{"zero tolerance negative gap", -0.01, 0, VerdictNoFit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.gap, tt.tolerance, lenient); got != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.gap, tt.tolerance, got, tt.expected)
			}
		})
	}
}

// TestClassify_StrictPolicy проверяет строгий режим: зазор меньше допуска
// становится no-fit, полоса tight отсутствует
func TestClassify_StrictPolicy(t *testing.T) {
	strict := EvaluatorPolicy{StrictTolerance: true}

	if got := Classify(0.4, 0.5, strict); got != VerdictNoFit {
		t.Errorf("strict Classify(0.4, 0.5) = %v, want no-fit", got)
	}
	if got := Classify(0.5, 0.5, strict); got != VerdictFit {
		t.Errorf("strict Classify(0.5, 0.5) = %v, want fit", got)
	}
	if got := Classify(-0.1, 0.5, strict); got != VerdictNoFit {
		t.Errorf("strict Classify(-0.1, 0.5) = %v, want no-fit", got)
	}
}

// TestEvaluate_UnknownBeforeThresholds проверяет, что нераспознанный диаметр
// дает unknown до любых сравнений порогов и не смешивается с no-fit
func TestEvaluate_UnknownBeforeThresholds(t *testing.T) {
	valid := catalog.NewFlexFloat(10.0)
	var invalid catalog.FlexFloat

	if _, verdict := Evaluate(invalid, valid, 0.5, EvaluatorPolicy{}); verdict != VerdictUnknown {
		t.Errorf("нераспознанный внутренний диаметр: %v, want unknown", verdict)
	}
	if _, verdict := Evaluate(valid, invalid, 0.5, EvaluatorPolicy{}); verdict != VerdictUnknown {
		t.Errorf("нераспознанный наружный диаметр: %v, want unknown", verdict)
	}
}

// TestEvaluate_NegativeToleranceClamped проверяет приведение отрицательного
// допуска к нулю до классификации
func TestEvaluate_NegativeToleranceClamped(t *testing.T) {
	gap, verdict := Evaluate(catalog.NewFlexFloat(10.0), catalog.NewFlexFloat(10.0), -1.0, EvaluatorPolicy{})
	if gap != 0 || verdict != VerdictFit {
		t.Errorf("Evaluate с отрицательным допуском = (%v, %v), want (0, fit)", gap, verdict)
	}
}

// TestEvaluate_GapScenario проверяет сквозной сценарий классификации:
// просвет 10.0 мм, допуск 0.5 мм против наружных диаметров 9.6/9.4/10.1
func TestEvaluate_GapScenario(t *testing.T) {
	inner := catalog.NewFlexFloat(10.0)

	tests := []struct {
		outer    float64
		expected Verdict
	}{
		{9.6, VerdictTight},
		{9.4, VerdictFit},
		{10.1, VerdictNoFit},
	}

	for _, tt := range tests {
		_, verdict := Evaluate(inner, catalog.NewFlexFloat(tt.outer), 0.5, EvaluatorPolicy{})
		if verdict != tt.expected {
			t.Errorf("OD %.1f: verdict = %v, want %v", tt.outer, verdict, tt.expected)
		}
	}
}

// TestEvaluatePair_NullDiameterFromJSON проверяет запись, пришедшую из
// JSON с external_mm: null - диаметр остается нераспознанным и пара
// классифицируется как unknown, а не как fit с нулевым наружным диаметром
func TestEvaluatePair_NullDiameterFromJSON(t *testing.T) {
	var ett catalog.DeviceRecord
	raw := `{"name": "Broken Tube", "internal_mm": 7.0, "external_mm": null}`
	if err := json.Unmarshal([]byte(raw), &ett); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	sad := catalog.DeviceRecord{Name: "i-gel", InternalMM: catalog.NewFlexFloat(10.0)}
	result := EvaluatePair(sad, ett, 0.5, EvaluatorPolicy{})

	if result.Verdict != VerdictUnknown {
		t.Errorf("verdict = %v, want unknown", result.Verdict)
	}
}

// TestEvaluatePair проверяет классификацию пары записей каталога
func TestEvaluatePair(t *testing.T) {
	sad := catalog.DeviceRecord{Name: "i-gel", InternalMM: catalog.NewFlexFloat(10.0)}
	ett := catalog.DeviceRecord{Name: "Portex", ExternalMM: catalog.NewFlexFloat(9.4)}

	result := EvaluatePair(sad, ett, 0.5, EvaluatorPolicy{})

	if result.Verdict != VerdictFit {
		t.Errorf("verdict = %v, want fit", result.Verdict)
	}
	if diff := result.Gap - 0.6; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("gap = %v, want 0.6", result.Gap)
	}
}
