package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"airwayserver/catalog"
	"airwayserver/database"
)

// DeviceKind вид импортируемого каталога
type DeviceKind string

const (
	// KindSAD каталог надгортанных воздуховодов
	KindSAD DeviceKind = "sad"
	// KindETT каталог эндотрахеальных трубок
	KindETT DeviceKind = "ett"
)

// ImportResult итог импорта каталога
type ImportResult struct {
	Total     int           `json:"total"`
	Success   int           `json:"success"`
	Skipped   int           `json:"skipped"`
	Errors    []string      `json:"errors,omitempty"`
	Started   time.Time     `json:"started"`
	Completed time.Time     `json:"completed"`
	Duration  time.Duration `json:"duration"`
}

// CatalogImporter загружает каталоги устройств из файлов в базу
type CatalogImporter struct {
	db *database.DB
}

// NewCatalogImporter создает импортер каталогов
func NewCatalogImporter(db *database.DB) *CatalogImporter {
	return &CatalogImporter{db: db}
}

// ImportFile импортирует каталог из файла; формат определяется расширением
// (.json, .xlsx, .csv)
func (ci *CatalogImporter) ImportFile(path string, kind DeviceKind) (*ImportResult, error) {
	var records []catalog.DeviceRecord
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = catalog.LoadRecords(path)
	case ".xlsx":
		records, err = ReadExcelRecords(path)
	case ".csv":
		records, err = ReadCSVRecords(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	return ci.ImportRecords(records, kind)
}

// ImportRecords сохраняет записи в базу.
// Записи без названия пропускаются с накоплением ошибок; нераспознанные
// диаметры не являются ошибкой импорта.
func (ci *CatalogImporter) ImportRecords(records []catalog.DeviceRecord, kind DeviceKind) (*ImportResult, error) {
	result := &ImportResult{
		Total:   len(records),
		Errors:  make([]string, 0),
		Started: time.Now(),
	}

	valid := make([]catalog.DeviceRecord, 0, len(records))
	for idx, record := range records {
		if strings.TrimSpace(record.Name) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: device name is required", idx+1))
			continue
		}
		valid = append(valid, record)
	}

	var err error
	switch kind {
	case KindSAD:
		err = ci.db.ReplaceSADRecords(valid)
	case KindETT:
		err = ci.db.ReplaceETTRecords(valid)
	default:
		return nil, fmt.Errorf("unknown device kind: %s", kind)
	}
	if err != nil {
		return nil, err
	}

	result.Success = len(valid)
	result.Completed = time.Now()
	result.Duration = result.Completed.Sub(result.Started)

	slog.Info("[Importer] Catalog import completed",
		"kind", string(kind),
		"total", result.Total,
		"success", result.Success,
		"skipped", result.Skipped,
	)

	return result, nil
}

// columnMapping сопоставление заголовков колонок полям записи
var columnMapping = map[string]string{
	"name":         "name",
	"device":       "name",
	"model":        "name",
	"manufacturer": "manufacturer",
	"internal_mm":  "internal_mm",
	"id_mm":        "internal_mm",
	"external_mm":  "external_mm",
	"od_mm":        "external_mm",
	"size":         "size",
	"type":         "type",
	"notes":        "notes",
}

// ReadExcelRecords читает записи каталога с первого листа книги Excel.
// Первая строка считается заголовком.
func ReadExcelRecords(path string) ([]catalog.DeviceRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []catalog.DeviceRecord{}, nil
	}

	return recordsFromRows(rows[0], rows[1:]), nil
}

// ReadCSVRecords читает записи каталога из CSV файла.
// Файлы из старых систем встречаются в Windows-1251; не-UTF-8 содержимое
// перекодируется перед разбором.
func ReadCSVRecords(path string) ([]catalog.DeviceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode csv file %s: %w", path, err)
		}
		data = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return []catalog.DeviceRecord{}, nil
	}

	return recordsFromRows(rows[0], rows[1:]), nil
}

// recordsFromRows строит записи по заголовку и строкам таблицы
func recordsFromRows(header []string, rows [][]string) []catalog.DeviceRecord {
	fields := make(map[int]string, len(header))
	for idx, title := range header {
		key := strings.ToLower(strings.TrimSpace(title))
		if field, ok := columnMapping[key]; ok {
			fields[idx] = field
		}
	}

	records := make([]catalog.DeviceRecord, 0, len(rows))
	for _, row := range rows {
		var record catalog.DeviceRecord
		empty := true

		for idx, cell := range row {
			field, ok := fields[idx]
			if !ok {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			empty = false

			switch field {
			case "name":
				record.Name = cell
			case "manufacturer":
				record.Manufacturer = cell
			case "internal_mm":
				record.InternalMM = parseCellFloat(cell)
			case "external_mm":
				record.ExternalMM = parseCellFloat(cell)
			case "size":
				record.Size = catalog.FlexString{Raw: cell}
			case "type":
				record.Type = cell
			case "notes":
				record.Notes = cell
			}
		}

		if !empty {
			records = append(records, record)
		}
	}

	return records
}

// parseCellFloat разбирает числоподобную ячейку через JSON представление,
// чтобы использовать общие правила распознавания FlexFloat
func parseCellFloat(cell string) catalog.FlexFloat {
	var f catalog.FlexFloat
	encoded, err := json.Marshal(cell)
	if err != nil {
		return f
	}
	// Ошибки разбора не фатальны: значение остается нераспознанным
	_ = json.Unmarshal(encoded, &f)
	return f
}
