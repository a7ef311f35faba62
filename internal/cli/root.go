// Package cli provides the command-line interface for clkit.
package cli

import (
	"github.com/codalab/clkit/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupHistory = "history"
	groupQuery   = "query"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for clkit.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "clkit",
		Short: "Shell conveniences for the CodaLab cl client",
		Long: `clkit wraps the CodaLab cl client with small interactive conveniences.

hist re-runs cl's stored creation arguments for a bundle and injects the
reconstructed command line into your shell history without executing it.

chain forwards tokens read from standard input as trailing positional
arguments to a cl invocation. Installing a symlink named xcl next to the
clkit binary makes "... | xcl" behave as "... | clkit chain".

cl itself stays in charge of all bundle semantics: clkit never parses or
validates its output and passes its exit status through unchanged.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupHistory, Title: "History Commands:"},
		&cobra.Group{ID: groupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	histCmd := newHistCommand(c)
	histCmd.GroupID = groupHistory

	chainCmd := newChainCommand(c)
	chainCmd.GroupID = groupHistory

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupQuery

	searchCmd := newSearchCommand(c)
	searchCmd.GroupID = groupQuery

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		histCmd,
		chainCmd,
		showCmd,
		searchCmd,
		configCmd,
	)

	return root
}
