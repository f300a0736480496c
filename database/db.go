package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultDBConfig возвращает конфигурацию подключения по умолчанию
func DefaultDBConfig() DBConfig {
	return DBConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// DB обертка для работы с базой каталогов устройств
type DB struct {
	conn *sql.DB
	path string
}

// NewDB открывает базу каталогов с конфигурацией по умолчанию
func NewDB(path string) (*DB, error) {
	return NewDBWithConfig(path, DefaultDBConfig())
}

// NewDBWithConfig открывает базу каталогов и применяет миграции схемы
func NewDBWithConfig(path string, config DBConfig) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.applyMigrations(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Path возвращает путь к файлу базы
func (db *DB) Path() string {
	return db.path
}

// Close закрывает подключение к базе
func (db *DB) Close() error {
	return db.conn.Close()
}
