package catalog

import (
	"sort"
	"strings"

	"airwayserver/normalization"
)

// BrandKey канонический ключ бренда: нормализованная пара
// (название, производитель). Пустое название исключает запись из группировки.
type BrandKey struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

// IsZero сообщает, что ключ не пригоден для группировки
func (k BrandKey) IsZero() bool {
	return k.Name == ""
}

// BrandOption элемент перечисления брендов/моделей воздуховодов
type BrandOption struct {
	Key          BrandKey `json:"key"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
}

// TubeOption элемент перечисления названий трубок
type TubeOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Index строит чистые перечислимые представления над сырыми наборами записей.
// Повторное построение от того же входа детерминировано и идемпотентно.
type Index struct {
	canonicalizer *normalization.Canonicalizer
}

// NewIndex создает индекс каталога поверх заданного канонизатора
func NewIndex(canonicalizer *normalization.Canonicalizer) *Index {
	if canonicalizer == nil {
		canonicalizer = normalization.NewDefaultCanonicalizer()
	}
	return &Index{canonicalizer: canonicalizer}
}

// Canonicalizer возвращает канонизатор, которым построен индекс
func (idx *Index) Canonicalizer() *normalization.Canonicalizer {
	return idx.canonicalizer
}

// Key строит канонический ключ бренда для записи
func (idx *Index) Key(record DeviceRecord) BrandKey {
	return BrandKey{
		Name:         idx.canonicalizer.CanonicalName(record.Name),
		Manufacturer: idx.canonicalizer.CanonicalManufacturer(record.Manufacturer),
	}
}

// BrandOptions возвращает различимые бренды/модели воздуховодов:
// по одному на канонический ключ (название, производитель), в порядке
// отображаемого названия, затем производителя (без учета регистра)
func (idx *Index) BrandOptions(sads []DeviceRecord) []BrandOption {
	seen := make(map[BrandKey]bool, len(sads))
	options := make([]BrandOption, 0, len(sads))

	for _, record := range sads {
		key := idx.Key(record)
		if key.IsZero() || seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, BrandOption{
			Key:          key,
			Name:         idx.canonicalizer.DisplayName(record.Name),
			Manufacturer: idx.canonicalizer.DisplayManufacturer(record.Manufacturer),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		left := strings.ToLower(options[i].Name)
		right := strings.ToLower(options[j].Name)
		if left != right {
			return left < right
		}
		return strings.ToLower(options[i].Manufacturer) < strings.ToLower(options[j].Manufacturer)
	})

	return options
}

// SizeOptions возвращает различимые распознанные размеры записей выбранного
// бренда по возрастанию. Нераспознанные размеры исключаются только из
// перечисления, но не из каталога.
func (idx *Index) SizeOptions(sads []DeviceRecord, brand BrandKey) []float64 {
	if brand.IsZero() {
		return []float64{}
	}

	seen := make(map[float64]bool)
	sizes := make([]float64, 0)

	for _, record := range sads {
		if idx.Key(record) != brand {
			continue
		}
		size, ok := normalization.ParseNominalSize(record.Size.Raw)
		if !ok || seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
	}

	sort.Float64s(sizes)
	return sizes
}

// TubeOptions возвращает различимые названия трубок: по одному на
// канонический ключ названия, в порядке отображаемой метки
func (idx *Index) TubeOptions(etts []DeviceRecord) []TubeOption {
	seen := make(map[string]bool, len(etts))
	options := make([]TubeOption, 0, len(etts))

	for _, record := range etts {
		key := idx.canonicalizer.CanonicalName(record.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, TubeOption{
			Key:   key,
			Label: idx.canonicalizer.DisplayName(record.Name),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return strings.ToLower(options[i].Label) < strings.ToLower(options[j].Label)
	})

	return options
}

// BrandRecords возвращает записи воздуховодов выбранного бренда
func (idx *Index) BrandRecords(sads []DeviceRecord, brand BrandKey) []DeviceRecord {
	if brand.IsZero() {
		return nil
	}

	records := make([]DeviceRecord, 0)
	for _, record := range sads {
		if idx.Key(record) == brand {
			records = append(records, record)
		}
	}
	return records
}
