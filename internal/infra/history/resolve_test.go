package history

import (
	"path/filepath"
	"testing"

	"github.com/codalab/clkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestResolve(t *testing.T) {
	home := "/home/alice"

	t.Run("explicit flag beats config and environment", func(t *testing.T) {
		w, err := Resolve(ResolveOptions{
			Shell:  "fish",
			File:   "/tmp/hist",
			Config: domain.HistoryConfig{Shell: "bash", File: "/cfg/hist"},
			Env:    envWith(map[string]string{"SHELL": "/bin/zsh", "HISTFILE": "/env/hist"}),
			Home:   home,
		}, testClock)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/hist", w.Path())
		assert.Equal(t, domain.ShellFish, w.shell)
	})

	t.Run("config beats environment", func(t *testing.T) {
		w, err := Resolve(ResolveOptions{
			Config: domain.HistoryConfig{Shell: "zsh", File: "/cfg/hist"},
			Env:    envWith(map[string]string{"SHELL": "/bin/bash", "HISTFILE": "/env/hist"}),
			Home:   home,
		}, testClock)
		require.NoError(t, err)
		assert.Equal(t, "/cfg/hist", w.Path())
		assert.Equal(t, domain.ShellZsh, w.shell)
	})

	t.Run("falls back to HISTFILE then shell default", func(t *testing.T) {
		w, err := Resolve(ResolveOptions{
			Env:  envWith(map[string]string{"SHELL": "/bin/bash", "HISTFILE": "/env/hist"}),
			Home: home,
		}, testClock)
		require.NoError(t, err)
		assert.Equal(t, "/env/hist", w.Path())

		w, err = Resolve(ResolveOptions{
			Env:  envWith(map[string]string{"SHELL": "/bin/bash"}),
			Home: home,
		}, testClock)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".bash_history"), w.Path())
	})

	t.Run("expands tilde from config", func(t *testing.T) {
		w, err := Resolve(ResolveOptions{
			Config: domain.HistoryConfig{Shell: "zsh", File: "~/.custom_history"},
			Env:    envWith(nil),
			Home:   home,
		}, testClock)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".custom_history"), w.Path())
	})

	t.Run("unknown shell errors", func(t *testing.T) {
		_, err := Resolve(ResolveOptions{
			Shell: "powershell",
			Env:   envWith(nil),
			Home:  home,
		}, testClock)
		assert.ErrorIs(t, err, domain.ErrUnknownShell)
	})

	t.Run("no home and no file errors", func(t *testing.T) {
		_, err := Resolve(ResolveOptions{
			Shell: "bash",
			Env:   envWith(nil),
		}, testClock)
		assert.ErrorIs(t, err, domain.ErrNoHistoryFile)
	})
}
