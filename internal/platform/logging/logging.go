package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the process logs.
type Options struct {
	Level string
	// File is the rotated log file path. "-" or "" logs to stderr.
	File string
}

// Build a JSON slog logger. Interactive sessions log to a rotated file so
// log lines never land between a prompt and the operator's answer.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("new logger: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" && opts.File != "-" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    16, // MB
			MaxBackups: 3,
			MaxAge:     28,
		}
		w, closer = lj, lj
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}
