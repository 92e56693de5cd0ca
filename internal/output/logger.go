// Package output provides the application logger: plain console messages
// plus a rotating command log file. The returned *slog.Logger doubles as the
// streaming sink handed to the command runner.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages without timestamps or level prefixes
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// newRotatingWriter creates the rotating file sink, with limits overridable
// through environment variables.
func newRotatingWriter(logFilePath string) *lumberjack.Logger {
	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if maxSizeStr := os.Getenv("GITKIT_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			writer.MaxSize = maxSize
		}
	}
	if maxBackupsStr := os.Getenv("GITKIT_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			writer.MaxBackups = maxBackups
		}
	}
	if maxAgeStr := os.Getenv("GITKIT_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			writer.MaxAge = maxAge
		}
	}

	return writer
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// NewLogger builds the application logger. Console output goes to stderr;
// when repoRoot is non-empty, records are also appended to a rotating log
// file under .git/gitkit.log.
func NewLogger(repoRoot string, debug bool) *slog.Logger {
	console := &consoleHandler{writer: os.Stderr, debugMode: debug}
	if repoRoot == "" {
		return slog.New(console)
	}

	logPath := filepath.Join(repoRoot, ".git", "gitkit.log")
	fileHandler := slog.NewTextHandler(newRotatingWriter(logPath), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(&multiHandler{handlers: []slog.Handler{console, fileHandler}})
}

// NewQuietLogger builds a logger that records to the rotating file only,
// used as the runner's streaming sink when console echo is not wanted.
func NewQuietLogger(repoRoot string) *slog.Logger {
	logPath := filepath.Join(repoRoot, ".git", "gitkit.log")
	fileHandler := slog.NewTextHandler(newRotatingWriter(logPath), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(fileHandler)
}
