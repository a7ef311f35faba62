package history

import (
	"path/filepath"
	"strings"

	"github.com/codalab/clkit/internal/domain"
)

// ResolveOptions controls how the target shell and history file are chosen.
// Precedence for both: explicit flag > config > environment > shell default.
type ResolveOptions struct {
	Env    func(string) string  // Environment lookup ($SHELL, $HISTFILE)
	Shell  string               // Explicit shell name, may be empty
	File   string               // Explicit history file, may be empty
	Home   string               // User home directory
	Config domain.HistoryConfig // [history] config section
}

// Resolve picks the shell and history file and returns a writer for them.
func Resolve(opts ResolveOptions, clock domain.Clock) (*Writer, error) {
	shellName := opts.Shell
	if shellName == "" {
		shellName = opts.Config.Shell
	}

	var shell domain.Shell
	var err error
	if shellName != "" {
		shell, err = domain.ParseShell(shellName)
	} else {
		shell, err = domain.DetectShell(opts.Env)
	}
	if err != nil {
		return nil, err
	}

	path := opts.File
	if path == "" {
		path = opts.Config.File
	}
	if path == "" {
		path = opts.Env("HISTFILE")
	}
	if path == "" {
		if opts.Home == "" {
			return nil, domain.ErrNoHistoryFile
		}
		path = shell.DefaultHistoryFile(opts.Home)
	}

	return NewWriter(shell, expandHome(path, opts.Home), clock), nil
}

// expandHome expands a leading "~/" using the home directory.
func expandHome(path, home string) string {
	if home != "" && strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
