package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("fetched manifest", "versions", 42)

	output := buf.String()
	assert.Contains(t, output, "fetched manifest")
	assert.Contains(t, output, "versions=42")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("id", "1.19.4").With("kind", "release").Debug("fetching detail")

	output := buf.String()
	assert.Contains(t, output, "id=1.19.4")
	assert.Contains(t, output, "kind=release")
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNewCLI_NonTerminalWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLI(&buf, 1)

	logger.Debug("hidden")
	logger.Info("cache hit", "path", ".cache/versions.json")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "cache hit", entry["msg"])
	assert.Equal(t, ".cache/versions.json", entry["path"])
}

func TestNewCLI_TerminalWritesText(t *testing.T) {
	orig := IsTerminalFunc
	defer func() { IsTerminalFunc = orig }()
	IsTerminalFunc = func(int) bool { return true }

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()

	NewCLI(f, 0).Warn("stale cache", "age", "3d")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=WARN")
	assert.Contains(t, string(data), "age=3d")
}

func TestNoopLoggerWith(t *testing.T) {
	child := NewNoop().With("key", "value")
	child.Info("should not panic")

	_, ok := child.(noopLogger)
	assert.True(t, ok, "With() on noopLogger should return noopLogger")
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Default().Info("custom logger message")

	assert.Contains(t, buf.String(), "custom logger message")
}

func TestDefaultLoggerConcurrency(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				Default().Info("concurrent read")
			}
			done <- true
		}()
		go func() {
			for j := 0; j < 100; j++ {
				SetDefault(NewNoop())
			}
			done <- true
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}
}
