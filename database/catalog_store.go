package database

import (
	"database/sql"
	"fmt"

	"airwayserver/catalog"
)

// nullFloat преобразует FlexFloat в nullable колонку
func nullFloat(f catalog.FlexFloat) sql.NullFloat64 {
	value, ok := f.Value()
	return sql.NullFloat64{Float64: value, Valid: ok}
}

// flexFloat преобразует nullable колонку обратно в FlexFloat
func flexFloat(nf sql.NullFloat64) catalog.FlexFloat {
	if !nf.Valid {
		return catalog.FlexFloat{}
	}
	return catalog.NewFlexFloat(nf.Float64)
}

// ReplaceSADRecords атомарно заменяет каталог воздуховодов
func (db *DB) ReplaceSADRecords(records []catalog.DeviceRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sad_devices`); err != nil {
		return fmt.Errorf("failed to clear sad_devices: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sad_devices (name, manufacturer, internal_mm, size, notes)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.Exec(record.Name, record.Manufacturer, nullFloat(record.InternalMM), record.Size.Raw, record.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert SAD record %q: %w", record.Name, err)
		}
	}

	return tx.Commit()
}

// ReplaceETTRecords атомарно заменяет каталог трубок
func (db *DB) ReplaceETTRecords(records []catalog.DeviceRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ett_devices`); err != nil {
		return fmt.Errorf("failed to clear ett_devices: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO ett_devices (name, manufacturer, internal_mm, external_mm, tube_type, notes)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.Exec(record.Name, record.Manufacturer, nullFloat(record.InternalMM),
			nullFloat(record.ExternalMM), record.Type, record.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert ETT record %q: %w", record.Name, err)
		}
	}

	return tx.Commit()
}

// LoadSADRecords загружает каталог воздуховодов
func (db *DB) LoadSADRecords() ([]catalog.DeviceRecord, error) {
	rows, err := db.conn.Query(`SELECT name, manufacturer, internal_mm, size, notes FROM sad_devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sad_devices: %w", err)
	}
	defer rows.Close()

	records := make([]catalog.DeviceRecord, 0)
	for rows.Next() {
		var record catalog.DeviceRecord
		var internal sql.NullFloat64
		if err := rows.Scan(&record.Name, &record.Manufacturer, &internal, &record.Size.Raw, &record.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan SAD record: %w", err)
		}
		record.InternalMM = flexFloat(internal)
		records = append(records, record)
	}

	return records, rows.Err()
}

// LoadETTRecords загружает каталог трубок
func (db *DB) LoadETTRecords() ([]catalog.DeviceRecord, error) {
	rows, err := db.conn.Query(`SELECT name, manufacturer, internal_mm, external_mm, tube_type, notes FROM ett_devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ett_devices: %w", err)
	}
	defer rows.Close()

	records := make([]catalog.DeviceRecord, 0)
	for rows.Next() {
		var record catalog.DeviceRecord
		var internal, external sql.NullFloat64
		if err := rows.Scan(&record.Name, &record.Manufacturer, &internal, &external, &record.Type, &record.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan ETT record: %w", err)
		}
		record.InternalMM = flexFloat(internal)
		record.ExternalMM = flexFloat(external)
		records = append(records, record)
	}

	return records, rows.Err()
}

// LoadCatalogs загружает оба каталога из базы
func (db *DB) LoadCatalogs() (catalog.Catalogs, error) {
	sads, err := db.LoadSADRecords()
	if err != nil {
		return catalog.Catalogs{}, err
	}
	etts, err := db.LoadETTRecords()
	if err != nil {
		return catalog.Catalogs{}, err
	}
	return catalog.Catalogs{SADs: sads, ETTs: etts}, nil
}

// UpsertManufacturerAlias добавляет или обновляет алиас производителя
func (db *DB) UpsertManufacturerAlias(misspelled, corrected string) error {
	_, err := db.conn.Exec(`INSERT INTO manufacturer_aliases (misspelled, corrected) VALUES (?, ?)
		ON CONFLICT(misspelled) DO UPDATE SET corrected = excluded.corrected`,
		misspelled, corrected)
	if err != nil {
		return fmt.Errorf("failed to upsert alias %q: %w", misspelled, err)
	}
	return nil
}

// LoadManufacturerAliases загружает таблицу алиасов производителей.
// Таблица дополняет встроенную конфигурацию канонизатора без изменения кода.
func (db *DB) LoadManufacturerAliases() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT misspelled, corrected FROM manufacturer_aliases`)
	if err != nil {
		return nil, fmt.Errorf("failed to query manufacturer_aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var misspelled, corrected string
		if err := rows.Scan(&misspelled, &corrected); err != nil {
			return nil, fmt.Errorf("failed to scan alias: %w", err)
		}
		aliases[misspelled] = corrected
	}

	return aliases, rows.Err()
}

// CatalogCounts возвращает количество записей в обоих каталогах
func (db *DB) CatalogCounts() (sads int, etts int, err error) {
	if err = db.conn.QueryRow(`SELECT COUNT(*) FROM sad_devices`).Scan(&sads); err != nil {
		return 0, 0, fmt.Errorf("failed to count sad_devices: %w", err)
	}
	if err = db.conn.QueryRow(`SELECT COUNT(*) FROM ett_devices`).Scan(&etts); err != nil {
		return 0, 0, fmt.Errorf("failed to count ett_devices: %w", err)
	}
	return sads, etts, nil
}
