package catalog

import (
	"reflect"
	"testing"

	"airwayserver/normalization"
)

func testIndex() *Index {
	return NewIndex(normalization.NewDefaultCanonicalizer())
}

func sizeOf(raw string) FlexString {
	return FlexString{Raw: raw}
}

// TestBrandOptions_DedupeAndOrder проверяет, что зашумленные варианты
// сворачиваются в одну опцию и порядок детерминирован
func TestBrandOptions_DedupeAndOrder(t *testing.T) {
	idx := testIndex()

	sads := []DeviceRecord{
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("Size 4")},
		{Name: "AuraGain Supraglottic Airway Device", Manufacturer: "Ambu", Size: sizeOf("Size 3")},
		{Name: "AuraGain®, Supraglottic Airway", Manufacturer: "Ambu", Size: sizeOf("Size 4")},
		{Name: "i-gel", Manufacturer: "Intersurgcial", Size: sizeOf("Size 5")},
	}

	options := idx.BrandOptions(sads)

	if len(options) != 2 {
		t.Fatalf("ожидалось 2 опции, получено %d: %+v", len(options), options)
	}

	// Порядок: отображаемое название без учета регистра
	if options[0].Key.Name != "auragain" {
		t.Errorf("первая опция = %q, want auragain", options[0].Key.Name)
	}
	if options[1].Key.Name != "i-gel" {
		t.Errorf("вторая опция = %q, want i-gel", options[1].Key.Name)
	}

	// Опечатка производителя сведена к одному ключу
	if options[1].Key.Manufacturer != "intersurgical" {
		t.Errorf("производитель = %q, want intersurgical", options[1].Key.Manufacturer)
	}
}

// TestBrandOptions_EmptyKeyExcluded проверяет, что запись с пустым
// каноническим ключом исключается из группировки, но не ломает построение
func TestBrandOptions_EmptyKeyExcluded(t *testing.T) {
	idx := testIndex()

	sads := []DeviceRecord{
		{Name: "®", Manufacturer: "Acme"},
		{Name: "Supraglottic Airway Device", Manufacturer: "Acme"},
		{Name: "i-gel", Manufacturer: "Intersurgical"},
	}

	options := idx.BrandOptions(sads)
	if len(options) != 1 || options[0].Key.Name != "i-gel" {
		t.Fatalf("ожидалась одна опция i-gel, получено %+v", options)
	}
}

// TestSizeOptions проверяет перечисление размеров выбранного бренда
func TestSizeOptions(t *testing.T) {
	idx := testIndex()

	sads := []DeviceRecord{
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("Size 5, Large adult")},
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("Size 3, Small adult")},
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("4")},
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("n/a")},
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("Size 4, duplicate row")},
		{Name: "AuraGain", Manufacturer: "Ambu", Size: sizeOf("Size 2")},
	}

	brand := BrandKey{Name: "i-gel", Manufacturer: "intersurgical"}
	sizes := idx.SizeOptions(sads, brand)

	expected := []float64{3, 4, 5}
	if !reflect.DeepEqual(sizes, expected) {
		t.Errorf("SizeOptions = %v, want %v", sizes, expected)
	}
}

// TestTubeOptions проверяет перечисление названий трубок
func TestTubeOptions(t *testing.T) {
	idx := testIndex()

	etts := []DeviceRecord{
		{Name: "Shiley™ Oral RAE"},
		{Name: "Portex Soft Seal"},
		{Name: "Shiley Oral RAE, cuffed"},
	}

	options := idx.TubeOptions(etts)

	if len(options) != 2 {
		t.Fatalf("ожидалось 2 опции, получено %d", len(options))
	}
	if options[0].Label != "Portex Soft Seal" || options[1].Label != "Shiley Oral RAE" {
		t.Errorf("неверный порядок: %+v", options)
	}
}

// TestIndex_EmptyCatalogs проверяет инвариант пустого каталога:
// ноль записей дает пустые перечисления без ошибок
func TestIndex_EmptyCatalogs(t *testing.T) {
	idx := testIndex()

	if options := idx.BrandOptions(nil); len(options) != 0 {
		t.Errorf("BrandOptions(nil) = %+v, want empty", options)
	}
	if sizes := idx.SizeOptions(nil, BrandKey{Name: "i-gel"}); len(sizes) != 0 {
		t.Errorf("SizeOptions(nil) = %v, want empty", sizes)
	}
	if options := idx.TubeOptions(nil); len(options) != 0 {
		t.Errorf("TubeOptions(nil) = %+v, want empty", options)
	}
}

// TestIndex_Deterministic проверяет, что повторное построение представления
// от того же входа дает идентичный результат
func TestIndex_Deterministic(t *testing.T) {
	idx := testIndex()

	sads := []DeviceRecord{
		{Name: "LMA Supreme", Manufacturer: "Teleflex", Size: sizeOf("Size 4")},
		{Name: "i-gel", Manufacturer: "Intersurgical", Size: sizeOf("Size 3")},
		{Name: "AuraGain", Manufacturer: "Ambu", Size: sizeOf("Size 4")},
	}

	first := idx.BrandOptions(sads)
	second := idx.BrandOptions(sads)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("построение не детерминировано: %+v != %+v", first, second)
	}
}
