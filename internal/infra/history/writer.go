// Package history appends entries to interactive shell history files.
// Entries are written in the format the owning shell expects, so the next
// session (or a `history -r` / `fc -R` in the current one) picks them up
// as if they had been typed.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codalab/clkit/internal/domain"
)

// zsh extended history entries look like ": 1700000000:0;command".
var zshExtendedRe = regexp.MustCompile(`(?m)^: \d+:\d+;`)

// Writer appends history entries for a single shell and file.
// Fields are ordered to minimize memory padding.
type Writer struct {
	clock domain.Clock
	path  string
	shell domain.Shell
}

// NewWriter creates a history writer for the given shell and file path.
func NewWriter(shell domain.Shell, path string, clock domain.Clock) *Writer {
	return &Writer{
		shell: shell,
		path:  path,
		clock: clock,
	}
}

// Ensure Writer implements domain.HistoryWriter interface.
var _ domain.HistoryWriter = (*Writer)(nil)

// Path returns the history file path this writer appends to.
func (w *Writer) Path() string {
	return w.path
}

// Append records line as the newest history entry. The line is never
// executed; only the file is touched.
func (w *Writer) Append(line string) error {
	entry, err := w.formatEntry(line)
	if err != nil {
		return err
	}

	// The fish history file lives under ~/.local/share/fish which may not
	// exist yet on a fresh account.
	if err := os.MkdirAll(filepath.Dir(w.path), 0o750); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// formatEntry renders the on-disk form of a history line for the shell.
func (w *Writer) formatEntry(line string) (string, error) {
	if strings.ContainsRune(line, '\n') {
		return "", fmt.Errorf("history entry must be a single line")
	}

	switch w.shell {
	case domain.ShellZsh:
		if w.usesExtendedHistory() {
			return fmt.Sprintf(": %d:0;%s\n", w.clock.Now().Unix(), line), nil
		}
		return line + "\n", nil
	case domain.ShellFish:
		return fmt.Sprintf("- cmd: %s\n  when: %d\n", escapeFish(line), w.clock.Now().Unix()), nil
	default:
		return line + "\n", nil
	}
}

// usesExtendedHistory reports whether the existing zsh history file is in
// EXTENDED_HISTORY format. A missing or plain file gets plain entries.
func (w *Writer) usesExtendedHistory() bool {
	f, err := os.Open(w.path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	// The format is uniform across the file; the head is enough.
	buf := make([]byte, 4096)
	n, _ := f.Read(buf)
	return zshExtendedRe.Match(buf[:n])
}

// escapeFish escapes a command for the fish history file, which uses a
// YAML-like format with backslash escapes.
func escapeFish(line string) string {
	return strings.ReplaceAll(line, `\`, `\\`)
}
