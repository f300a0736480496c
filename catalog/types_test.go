package catalog

import (
	"encoding/json"
	"testing"
)

// TestFlexFloat_UnmarshalJSON проверяет разбор числовых и числоподобных полей
func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		valid    bool
	}{
		{"json number", `10.2`, 10.2, true},
		{"integer", `7`, 7, true},
		{"numeric string", `"9.4"`, 9.4, true},
		{"decimal comma", `"10,2"`, 10.2, true},
		{"with unit", `"5.0 mm"`, 5.0, true},
		{"not available", `"n/a"`, 0, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) вернул ошибку: %v", tt.input, err)
			}
			value, valid := f.Value()
			if valid != tt.valid || (valid && value != tt.expected) {
				t.Errorf("Value() = (%v, %v), want (%v, %v)", value, valid, tt.expected, tt.valid)
			}
		})
	}
}

// TestFlexString_UnmarshalJSON проверяет разбор поля размера,
// записанного строкой или числом
func TestFlexString_UnmarshalJSON(t *testing.T) {
	var s FlexString
	if err := json.Unmarshal([]byte(`"Size 4, Medium adult"`), &s); err != nil {
		t.Fatalf("Unmarshal строки: %v", err)
	}
	if s.Raw != "Size 4, Medium adult" {
		t.Errorf("Raw = %q", s.Raw)
	}

	if err := json.Unmarshal([]byte(`4.5`), &s); err != nil {
		t.Fatalf("Unmarshal числа: %v", err)
	}
	if s.Raw != "4.5" {
		t.Errorf("Raw = %q, want 4.5", s.Raw)
	}
}

// TestDeviceRecord_TubeType проверяет подстановку типа по умолчанию
func TestDeviceRecord_TubeType(t *testing.T) {
	record := DeviceRecord{Name: "Portex"}
	if got := record.TubeType(); got != DefaultTubeType {
		t.Errorf("TubeType() = %q, want %q", got, DefaultTubeType)
	}

	record.Type = "Reinforced"
	if got := record.TubeType(); got != "Reinforced" {
		t.Errorf("TubeType() = %q, want Reinforced", got)
	}
}

// TestDeviceRecord_UnmarshalMalformed проверяет, что запись с нечисловым
// диаметром разбирается без ошибки и исключается только из сопоставления
func TestDeviceRecord_UnmarshalMalformed(t *testing.T) {
	raw := `{"name": "Broken Tube", "internal_mm": "unknown", "external_mm": 9.9}`

	var record DeviceRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("Unmarshal вернул ошибку: %v", err)
	}

	if _, valid := record.InternalMM.Value(); valid {
		t.Error("нераспознанный internal_mm не должен быть валидным")
	}
	if value, valid := record.ExternalMM.Value(); !valid || value != 9.9 {
		t.Errorf("external_mm = (%v, %v), want (9.9, true)", value, valid)
	}
}
