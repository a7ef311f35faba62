package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/tui/picker"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runPickerFunc is a function variable for launching the picker, allowing it to be mocked in tests.
var runPickerFunc = runPicker

// isTerminalFunc is a function variable for the TTY check, allowing it to be mocked in tests.
var isTerminalFunc = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newSearchCommand creates the search command.
func newSearchCommand(c *app.Container) *cobra.Command {
	var pick bool
	var shellName string
	var histFile string

	cmd := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search bundles and show their recreate commands",
		Long: `Search bundles via 'cl search ... -u' and list each match with the
command line that would recreate it.

With --pick, an interactive picker opens; selecting a bundle injects its
recreate line into shell history, exactly as 'clkit hist' would.

Examples:
  clkit search mnist owner=alice
  clkit search mnist --pick`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SearchBundlesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SearchBundlesInput{
				Keywords: args,
			})
			if err != nil {
				return err
			}

			if !pick {
				w := cmd.OutOrStdout()
				for _, m := range out.Matches {
					_, _ = fmt.Fprintf(w, "%s  %-20s  %s\n", m.UUID, m.Name, m.Line)
				}
				return nil
			}

			if !isTerminalFunc() {
				return domain.ErrNotTerminal
			}

			match, ok, err := runPickerFunc(out.Matches)
			if err != nil {
				return err
			}
			if !ok {
				return nil // Picker dismissed without a selection
			}

			writer, err := c.HistoryWriter(shellName, histFile)
			if err != nil {
				return err
			}
			if err := writer.Append(match.Line); err != nil {
				return fmt.Errorf("append history: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "history: %s\n", match.Line)
			c.Logger.Debug("injected picked entry", "bundle", match.UUID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Pick a match interactively and inject its recreate line into history")
	cmd.Flags().StringVar(&shellName, "shell", "", "Target shell for --pick: bash, zsh, or fish (default: $SHELL)")
	cmd.Flags().StringVar(&histFile, "histfile", "", "History file for --pick (default: $HISTFILE or the shell's usual path)")

	return cmd
}

// runPicker opens the bundle picker and returns the selection.
func runPicker(matches []usecase.SearchMatch) (usecase.SearchMatch, bool, error) {
	model := picker.New(matches)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return usecase.SearchMatch{}, false, err
	}
	if m, ok := final.(*picker.Model); ok {
		match, picked := m.Picked()
		return match, picked, nil
	}
	return usecase.SearchMatch{}, false, nil
}
