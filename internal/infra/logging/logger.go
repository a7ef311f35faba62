// Package logging provides file-based logging for clkit.
// Logs go to a rotated file under the global config directory so stderr
// stays free for the wrapped cl tool's own output.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/codalab/clkit/internal/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a logger from the [log] config section. defaultDir is the
// global config directory; an empty path disables logging.
func New(cfg domain.LogConfig, defaultDir string) *slog.Logger {
	path := cfg.File
	if path == "" && defaultDir != "" {
		path = filepath.Join(defaultDir, "logs", "clkit.log")
	}

	var w io.Writer
	if path == "" {
		w = io.Discard
	} else {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
