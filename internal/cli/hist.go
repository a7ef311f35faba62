package cli

import (
	"fmt"

	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/spf13/cobra"
)

// newHistCommand creates the hist command for history injection.
func newHistCommand(c *app.Container) *cobra.Command {
	var shellName string
	var histFile string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "hist <bundle-spec>",
		Short: "Inject a bundle's creation command into shell history",
		Long: `Reconstruct the command that created a bundle and append it to your
shell's history file, without executing it. The arguments come from
'cl info -f args <bundle-spec>'.

The running shell sees the entry on its next history read (new session,
'history -r' in bash, 'fc -R' in zsh); fish picks it up on its next
history merge.

If cl does not know the identifier, its error is shown unchanged, the
history file is not touched, and cl's exit status is propagated.

Examples:
  # Re-inject the creation command of a bundle
  clkit hist 0x1a2b3c

  # Print the reconstructed line instead of injecting it
  clkit hist --print 0x1a2b3c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var writer domain.HistoryWriter
			if !printOnly {
				w, err := c.HistoryWriter(shellName, histFile)
				if err != nil {
					return err
				}
				writer = w
			}

			uc := c.RecreateHistoryUseCase(writer)
			out, err := uc.Execute(cmd.Context(), usecase.RecreateHistoryInput{
				BundleSpec: args[0],
				PrintOnly:  printOnly,
			})
			if err != nil {
				return err
			}

			if printOnly {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Line)
				return nil
			}

			// Success is silent on stdout, like the original macro.
			c.Logger.Debug("injected history entry", "bundle", args[0], "line", out.Line)
			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "Target shell: bash, zsh, or fish (default: $SHELL)")
	cmd.Flags().StringVar(&histFile, "histfile", "", "History file to append to (default: $HISTFILE or the shell's usual path)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the reconstructed line instead of injecting it")

	return cmd
}
