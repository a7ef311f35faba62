package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShell(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Shell
		wantErr bool
	}{
		{name: "bash", input: "bash", want: ShellBash},
		{name: "zsh", input: "zsh", want: ShellZsh},
		{name: "fish", input: "fish", want: ShellFish},
		{name: "unsupported", input: "tcsh", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShell(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownShell)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectShell(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(key string) string { return vars[key] }
	}

	t.Run("from SHELL path", func(t *testing.T) {
		got, err := DetectShell(env(map[string]string{"SHELL": "/usr/bin/zsh"}))
		require.NoError(t, err)
		assert.Equal(t, ShellZsh, got)
	})

	t.Run("SHELL unset", func(t *testing.T) {
		_, err := DetectShell(env(map[string]string{}))
		assert.ErrorIs(t, err, ErrUnknownShell)
	})

	t.Run("unsupported shell", func(t *testing.T) {
		_, err := DetectShell(env(map[string]string{"SHELL": "/bin/csh"}))
		assert.ErrorIs(t, err, ErrUnknownShell)
	})
}

func TestDefaultHistoryFile(t *testing.T) {
	home := "/home/alice"

	assert.Equal(t, filepath.Join(home, ".bash_history"), ShellBash.DefaultHistoryFile(home))
	assert.Equal(t, filepath.Join(home, ".zsh_history"), ShellZsh.DefaultHistoryFile(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "fish", "fish_history"),
		ShellFish.DefaultHistoryFile(home))
}
