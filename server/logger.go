package server

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger глобальный структурированный логгер
	Logger *slog.Logger
)

func init() {
	SetupLogger("INFO")
}

// SetupLogger настраивает глобальный JSON логгер с заданным уровнем.
// Вызывается повторно при загрузке конфигурации.
func SetupLogger(level string) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true, // Добавляем информацию об источнике (файл, строка)
	}

	// Используем JSON handler для структурированного логирования
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}

// parseLevel преобразует строковый уровень из конфигурации в slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
