// Package log provides structured logging for okc and mcgen.
//
// Logger is a small interface backed by log/slog so that the manifest
// fetcher and the generator can take a logger through their options and
// tests can hand them a noop or buffer-backed one.
//
// Verbosity (the -v count on both binaries):
//   - 0: WARN and above
//   - 1: INFO, e.g. cache hits and per-run summaries
//   - 2+: DEBUG, e.g. one line per upstream request
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"
)

// Logger is the interface for structured logging.
// Methods match slog's signature for easy integration.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds the given key-value pairs to every entry.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// IsTerminalFunc reports whether a file descriptor is a terminal.
// Tests override it.
var IsTerminalFunc = term.IsTerminal

// LevelFor maps a -v count to a slog level.
func LevelFor(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewCLI builds the logger used by the command-line binaries.
// Interactive terminals get slog's text format; anything else (CI logs,
// pipes, files) gets one JSON object per line.
func NewCLI(w io.Writer, verbosity int) Logger {
	opts := &slog.HandlerOptions{Level: LevelFor(verbosity)}
	if f, ok := w.(*os.File); ok && IsTerminalFunc(int(f.Fd())) {
		return New(slog.NewTextHandler(w, opts))
	}
	return New(slog.NewJSONHandler(w, opts))
}

type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger configured at startup.
// Returns a noop logger if SetDefault has not been called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. Binaries call it once, after flag parsing.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
