package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера совместимости
type Config struct {
	// Сервер
	Port string `json:"port"`

	// База каталогов устройств
	DatabasePath string `json:"database_path"`

	// Файлы каталогов для первичной загрузки (используются, когда база пуста)
	SADCatalogPath string `json:"sad_catalog_path"`
	ETTCatalogPath string `json:"ett_catalog_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Сопоставление
	DefaultToleranceMM float64 `json:"default_tolerance_mm"`

	// Ограничение частоты запросов к API
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateLimitBurst     int     `json:"rate_limit_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		Port: getEnv("SERVER_PORT", "8080"),

		DatabasePath:   getEnv("DATABASE_PATH", "airway_catalog.db"),
		SADCatalogPath: getEnv("SAD_CATALOG_PATH", "data/sad_catalog.json"),
		ETTCatalogPath: getEnv("ETT_CATALOG_PATH", "data/ett_catalog.json"),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		DefaultToleranceMM: getEnvFloat("DEFAULT_TOLERANCE_MM", 0.5),

		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv возвращает переменную окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt возвращает целочисленную переменную окружения
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvFloat возвращает вещественную переменную окружения
func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration возвращает переменную окружения с длительностью
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
