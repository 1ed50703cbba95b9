package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger creates a text logger writing to sink, such as io.Discard.
func NewLogger(sink io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		AddSource: false,
		Level:     lvl,
	})
	return slog.New(handler), nil
}

// Open returns a logger appending to path. With an empty path the logs go
// to fallback. On success the returned close function is never nil.
func Open(path string, fallback io.Writer, level string) (*slog.Logger, func() error, error) {
	if path == "" {
		logger, err := NewLogger(fallback, level)
		return logger, func() error { return nil }, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger, err := NewLogger(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
