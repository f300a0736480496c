package database

import (
	"fmt"
	"log/slog"
)

// migration одна миграция схемы; версии применяются строго по порядку
type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_sad_devices",
		sql: `CREATE TABLE IF NOT EXISTS sad_devices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			manufacturer TEXT NOT NULL DEFAULT '',
			internal_mm REAL,
			size TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		version: 2,
		name:    "create_ett_devices",
		sql: `CREATE TABLE IF NOT EXISTS ett_devices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			manufacturer TEXT NOT NULL DEFAULT '',
			internal_mm REAL,
			external_mm REAL,
			tube_type TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		version: 3,
		name:    "create_manufacturer_aliases",
		sql: `CREATE TABLE IF NOT EXISTS manufacturer_aliases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			misspelled TEXT NOT NULL UNIQUE,
			corrected TEXT NOT NULL
		)`,
	},
	{
		version: 4,
		name:    "index_device_names",
		sql: `CREATE INDEX IF NOT EXISTS idx_sad_devices_name ON sad_devices(name);
		CREATE INDEX IF NOT EXISTS idx_ett_devices_name ON ett_devices(name)`,
	},
}

// applyMigrations применяет недостающие миграции схемы
func (db *DB) applyMigrations() error {
	_, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	if err := db.conn.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		if _, err := db.conn.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := db.conn.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		slog.Info("[Database] Migration applied", "version", m.version, "name", m.name)
	}

	return nil
}
