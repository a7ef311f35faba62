package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codalab/clkit/internal/domain"
)

// configTemplate is written by `clkit config init`.
const configTemplate = `# clkit configuration
# Local overrides can be placed in a .clkit.toml next to where you run clkit.

# Path or name of the CodaLab CLI binary.
# cl_bin = "cl"

[history]
# Shell whose history file receives injected commands: bash, zsh, or fish.
# Defaults to the basename of $SHELL.
# shell = "zsh"
# Explicit history file. Defaults to $HISTFILE, then the shell's usual path.
# file = "~/.zsh_history"

[chain]
# How piped input is split into cl arguments: "whitespace" or "lines".
# split = "whitespace"

[log]
# level = "info"
# file = ""
`

// Manager creates and locates configuration files.
type Manager struct {
	globalConfDir string
}

// NewManager creates a Manager for the default global config directory.
func NewManager() *Manager {
	return &Manager{globalConfDir: DefaultGlobalConfigDir()}
}

// NewManagerWithGlobalDir creates a Manager with a custom global directory.
// This is useful for testing.
func NewManagerWithGlobalDir(dir string) *Manager {
	return &Manager{globalConfDir: dir}
}

// GlobalPath returns the path of the global config file.
func (m *Manager) GlobalPath() string {
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// InitGlobal writes the commented config template to the global path.
// Fails if the file already exists.
func (m *Manager) InitGlobal() (string, error) {
	path := m.GlobalPath()
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	if err := os.MkdirAll(m.globalConfDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
