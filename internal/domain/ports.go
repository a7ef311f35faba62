package domain

import (
	"context"
	"time"
)

// BundleClient queries and invokes the wrapped cl tool. Its output is
// treated as opaque text; all semantics belong to cl itself.
type BundleClient interface {
	// FieldValue returns the value of a single bundle field via `cl info -f`.
	FieldValue(ctx context.Context, spec, field string) (string, error)

	// Search returns the uuids of bundles matching the keywords.
	Search(ctx context.Context, keywords []string) ([]string, error)

	// RunWithArgs invokes cl with the target subcommand and extra trailing
	// arguments, stdio inherited from this process.
	RunWithArgs(target, extra []string) error
}

// HistoryWriter appends entries to an interactive shell's history file.
type HistoryWriter interface {
	// Append records line as the newest history entry without executing it.
	Append(line string) error
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Capture runs the command and returns its stdout. Stderr is passed
	// through to this process so the wrapped tool's diagnostics reach the
	// user unmodified.
	Capture(ctx context.Context, cmd *ExecCommand) ([]byte, error)

	// Interactive runs the command with stdin/stdout/stderr inherited.
	Interactive(cmd *ExecCommand) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global + defaults).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
