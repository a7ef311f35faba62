package cli

import (
	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/spf13/cobra"
)

// newChainCommand creates the chain command (the xcl alias).
func newChainCommand(c *app.Container) *cobra.Command {
	var splitMode string

	cmd := &cobra.Command{
		Use:   "chain [subcommand [args...]]",
		Short: "Forward piped tokens as trailing cl arguments",
		Long: `Read standard input, split it into tokens, and invoke cl with the
tokens appended as positional arguments. Without a subcommand the target
invocation is 'cl info -f args'.

cl's stdout/stderr pass through and its exit status is propagated; empty
input runs cl with no appended arguments.

Splitting is whitespace by default; use --split lines to keep embedded
spaces within each input line.

Examples:
  # Look up creation args for several bundles at once
  cl search mnist -u | clkit chain

  # Feed search results into another subcommand
  cl search state=failed -u | clkit chain rm

  # Same, installed as the xcl alias
  cl search mnist -u | xcl`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modeStr := splitMode
			if modeStr == "" {
				modeStr = c.Config.Chain.Split
			}
			mode, err := domain.ParseSplitMode(modeStr)
			if err != nil {
				return err
			}

			uc := c.ChainArgsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ChainArgsInput{
				Input:  cmd.InOrStdin(),
				Target: args,
				Split:  mode,
			})
			if err != nil {
				return err
			}

			c.Logger.Debug("chained arguments", "count", len(out.Args))
			return nil
		},
	}

	cmd.Flags().StringVar(&splitMode, "split", "", "Input splitting mode: whitespace or lines (default from config)")

	// Flag parsing stops at the first positional so flag-like fixed args
	// (e.g. "chain rm --force") belong to cl, not to clkit.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
