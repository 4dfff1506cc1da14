package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config — настройки диагностического лога.
// На то, что программа печатает в stdout, они не влияют.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
}

// Load считывает .env (если он есть) и переменные окружения.
func Load() (*Config, error) {
	// Файла .env может и не быть, это нормальная ситуация:
	// тогда берем значения по умолчанию.
	_ = godotenv.Load()

	level, err := parseLevel(withDefault(os.Getenv("LOG_LEVEL"), "info"))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(withDefault(os.Getenv("LOG_FORMAT"), FormatText)))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("переменная LOG_FORMAT: неизвестный формат %q", format)
	}

	return &Config{
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("переменная LOG_LEVEL: неизвестный уровень %q", value)
	}
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
