package server

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger создает структурированный логгер в формате JSON
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug, // Файл и строка только в debug, иначе лог слишком шумный
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// SetupLogger устанавливает логгер по умолчанию для slog и пакета log
func SetupLogger(level slog.Level) *slog.Logger {
	logger := NewLogger(os.Stdout, level)
	slog.SetDefault(logger)
	return logger
}
