package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация пути к базе каталогов
	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация допуска: отрицательный допуск не должен достигать ядра
	if c.DefaultToleranceMM < 0 {
		errors = append(errors, "default tolerance must be non-negative")
	}

	// Валидация ограничения частоты
	if c.RateLimitPerSecond <= 0 {
		errors = append(errors, "rate limit must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Валидация уровня логирования
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level: %s", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}
