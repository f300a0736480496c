package normalization

import (
	"testing"
)

// TestParseNominalSize проверяет извлечение номинального размера
// из текстовых дескрипторов и числовых значений
func TestParseNominalSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"size token with attributes", "Size 4, Medium adult, 50-90 kg", 4, true},
		{"lowercase token", "size 2.5", 2.5, true},
		{"token with colon", "Size: 3", 3, true},
		{"plain number", "4.5", 4.5, true},
		{"plain integer", "5", 5, true},
		{"not available", "n/a", 0, false},
		{"empty", "", 0, false},
		{"free text without size", "Medium adult", 0, false},
		{"size without number", "size unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNominalSize(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ParseNominalSize(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
