package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gateloom/pkg/pipeline"
)

// solveCommand creates the solve command: a debug view printing the solved
// layout as JSON without producing a document.
func (c *CLI) solveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "solve [circuit.(toml|json)]",
		Short: "Solve a circuit's layout and print it as JSON",
		Long:  `Solve computes width-minimal start columns for every gate in the manifest and prints the assignment as JSON: total width, track count, and per-gate column, track, span, and width. Useful for inspecting why a layout comes out the way it does.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(cmd.Context(), pipeline.Options{
				Input:       args[0],
				Format:      pipeline.FormatJSON,
				LeftMargin:  marginUnset,
				RightMargin: marginUnset,
			}, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
