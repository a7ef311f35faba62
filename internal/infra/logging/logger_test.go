package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/codalab/clkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNew_WritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clkit.log")
	logger := New(domain.LogConfig{Level: "debug", File: path}, "")

	logger.Debug("injected history entry", "shell", "bash")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "injected history entry")
	assert.Contains(t, string(data), "shell=bash")
}

func TestNew_DefaultsUnderGlobalDir(t *testing.T) {
	dir := t.TempDir()
	logger := New(domain.LogConfig{Level: "info"}, dir)

	logger.Info("hello")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "clkit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_DisabledWithoutPath(t *testing.T) {
	logger := New(domain.LogConfig{}, "")
	assert.NotPanics(t, func() { logger.Info("dropped") })
}
