package domain

import (
	"fmt"
	"path/filepath"
)

// Shell identifies an interactive shell whose history file format we know
// how to append to.
type Shell string

// Supported shells.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell parses a shell name.
func ParseShell(name string) (Shell, error) {
	switch Shell(name) {
	case ShellBash:
		return ShellBash, nil
	case ShellZsh:
		return ShellZsh, nil
	case ShellFish:
		return ShellFish, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShell, name)
}

// DetectShell determines the interactive shell from the environment.
// env is a getenv-style lookup function ($SHELL is consulted).
func DetectShell(env func(string) string) (Shell, error) {
	shellPath := env("SHELL")
	if shellPath == "" {
		return "", fmt.Errorf("%w: $SHELL is not set", ErrUnknownShell)
	}
	return ParseShell(filepath.Base(shellPath))
}

// DefaultHistoryFile returns the conventional history file path for the
// shell, relative to the user's home directory.
func (s Shell) DefaultHistoryFile(home string) string {
	switch s {
	case ShellZsh:
		return filepath.Join(home, ".zsh_history")
	case ShellFish:
		return filepath.Join(home, ".local", "share", "fish", "fish_history")
	default:
		return filepath.Join(home, ".bash_history")
	}
}
