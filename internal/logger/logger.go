package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New собирает slog-логгер по настройкам из конфига.
// Неизвестный формат трактуется как text.
func New(level, format string, addSource bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, format, addSource)
}

func NewWithWriter(w io.Writer, level, format string, addSource bool) *slog.Logger {
	hopts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: addSource,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	return slog.New(h)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
