package cli

import (
	"encoding/json"
	"fmt"

	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newShowCommand creates the show command for displaying bundle fields.
func newShowCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <bundle-spec>",
		Short: "Show a bundle's stored fields",
		Long: `Fetch and display a bundle's uuid, name, creation args, state, owner,
and creation time, each via 'cl info -f <field>'.

Examples:
  clkit show 0x1a2b3c
  clkit show 0x1a2b3c -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowBundleUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowBundleInput{
				BundleSpec: args[0],
			})
			if err != nil {
				return err
			}
			return renderBundleInfo(cmd, out.Info, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}

// renderBundleInfo writes the bundle fields in the requested format.
func renderBundleInfo(cmd *cobra.Command, info *domain.BundleInfo, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "text":
		for _, field := range domain.ShowFields {
			_, _ = fmt.Fprintf(w, "%-8s %s\n", field+":", info.Field(field))
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, _ = fmt.Fprint(w, string(data))
		return nil
	}
	return fmt.Errorf("unknown output format: %q", format)
}
