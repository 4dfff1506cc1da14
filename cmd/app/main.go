package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"class_objects/internal/config"
	"class_objects/internal/service"
)

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("ошибка конфигурации", "error", err)
		os.Exit(1)
	}

	// 2. Логгер пишет в stderr, stdout остается только для сценария
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	logger.Debug("demo starting", "log_format", cfg.LogFormat)

	// 3. Сценарий
	demo := service.NewDemo(os.Stdout, logger)
	if err := demo.Run(context.Background()); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
