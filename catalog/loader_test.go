package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("не удалось записать тестовый каталог: %v", err)
	}
	return path
}

// TestParseRecords_BothFormats проверяет поддержку массива верхнего уровня
// и объекта с полем devices
func TestParseRecords_BothFormats(t *testing.T) {
	flat := `[{"name": "i-gel", "internal_mm": 10.0}]`
	records, err := ParseRecords([]byte(flat))
	if err != nil || len(records) != 1 {
		t.Fatalf("разбор массива: records=%v err=%v", records, err)
	}

	wrapped := `{"devices": [{"name": "AuraGain", "internal_mm": "10.2"}]}`
	records, err = ParseRecords([]byte(wrapped))
	if err != nil || len(records) != 1 {
		t.Fatalf("разбор объекта: records=%v err=%v", records, err)
	}
	if value, ok := records[0].InternalMM.Value(); !ok || value != 10.2 {
		t.Errorf("internal_mm = (%v, %v), want (10.2, true)", value, ok)
	}
}

// TestParseRecords_Invalid проверяет ошибку на невалидном JSON
func TestParseRecords_Invalid(t *testing.T) {
	if _, err := ParseRecords([]byte(`{broken`)); err == nil {
		t.Error("ожидалась ошибка разбора")
	}
}

// TestLoadCatalogs_DegradesToEmpty проверяет, что сбой загрузки деградирует
// до пустых каталогов без ошибки: ядро обязано работать над пустым входом
func TestLoadCatalogs_DegradesToEmpty(t *testing.T) {
	sadPath := writeTempCatalog(t, "sad.json", `[{"name": "i-gel", "internal_mm": 10.0}]`)

	catalogs := LoadCatalogs(sadPath, filepath.Join(t.TempDir(), "missing.json"))

	if len(catalogs.SADs) != 1 {
		t.Errorf("SADs = %d, want 1", len(catalogs.SADs))
	}
	if catalogs.ETTs == nil || len(catalogs.ETTs) != 0 {
		t.Errorf("ETTs должен быть пустым непустым-nil срезом, получено %v", catalogs.ETTs)
	}
}
