package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// catalogFile поддерживает оба наблюдаемых формата файла каталога:
// плоский массив записей или объект с полем devices
type catalogFile struct {
	Devices []DeviceRecord `json:"devices"`
}

// LoadRecords загружает записи каталога из JSON файла.
// Поддерживается массив записей верхнего уровня и объект {"devices": [...]}.
func LoadRecords(path string) ([]DeviceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseRecords(data)
}

// ParseRecords разбирает JSON содержимое файла каталога
func ParseRecords(data []byte) ([]DeviceRecord, error) {
	var records []DeviceRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return file.Devices, nil
}

// LoadCatalogs загружает оба каталога из JSON файлов.
// Сбой загрузки деградирует до пустого каталога с предупреждением в логе:
// ядро обязано корректно работать над пустым входом (ноль опций, ноль
// результатов, без ошибок).
func LoadCatalogs(sadPath, ettPath string) Catalogs {
	catalogs := Catalogs{
		SADs: []DeviceRecord{},
		ETTs: []DeviceRecord{},
	}

	if sads, err := LoadRecords(sadPath); err != nil {
		slog.Warn("[Catalog] Failed to load SAD catalog, using empty set",
			"path", sadPath,
			"error", err,
		)
	} else {
		catalogs.SADs = sads
	}

	if etts, err := LoadRecords(ettPath); err != nil {
		slog.Warn("[Catalog] Failed to load ETT catalog, using empty set",
			"path", ettPath,
			"error", err,
		)
	} else {
		catalogs.ETTs = etts
	}

	slog.Info("[Catalog] Catalogs loaded",
		"sad_records", len(catalogs.SADs),
		"ett_records", len(catalogs.ETTs),
	)

	return catalogs
}
