package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gateloom/pkg/errors"
	"github.com/matzehuels/gateloom/pkg/pipeline"
)

// graphFormats is the subset of pipeline formats the graph command accepts.
var graphFormats = map[string]bool{
	pipeline.FormatDOT: true,
	pipeline.FormatSVG: true,
	pipeline.FormatPNG: true,
}

// graphCommand creates the graph command: exports the derived constraint
// graph (precedence edges plus alignment pairs) for layout debugging.
func (c *CLI) graphCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "graph [circuit.(toml|json)]",
		Short: "Export a circuit's constraint graph",
		Long:  `Graph exports the constraint structure the layout solver derives from a manifest: one node per gate, solid edges for per-track ordering, dashed edges for alignment pairs. Formats: dot (Graphviz source), svg, png.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !graphFormats[format] {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format: %q (must be one of: dot, svg, png)", format)
			}
			return c.runPipeline(cmd.Context(), pipeline.Options{
				Input:       args[0],
				Format:      format,
				LeftMargin:  marginUnset,
				RightMargin: marginUnset,
			}, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot (default), svg, png")

	return cmd
}
