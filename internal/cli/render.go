package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gateloom/pkg/errors"
	"github.com/matzehuels/gateloom/pkg/pipeline"
)

// renderCommand creates the render command: the full load → solve → render
// pipeline producing a Qcircuit document.
func (c *CLI) renderCommand() *cobra.Command {
	var output string
	left, right := marginUnset, marginUnset

	cmd := &cobra.Command{
		Use:   "render [circuit.(toml|json)]",
		Short: "Render a circuit manifest as a Qcircuit document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(cmd.Context(), pipeline.Options{
				Input:       args[0],
				Format:      pipeline.FormatTex,
				LeftMargin:  left,
				RightMargin: right,
			}, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&left, "left-margin", marginUnset, "idle columns before the circuit (overrides manifest)")
	cmd.Flags().IntVar(&right, "right-margin", marginUnset, "idle columns after the circuit (overrides manifest)")

	return cmd
}

// runPipeline executes a pipeline run with a spinner and writes the artifact.
// Stats are printed only when the artifact goes to a file, keeping piped
// stdout output clean.
func (c *CLI) runPipeline(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = loggerFromContext(ctx)

	label := opts.Input
	if label == "" {
		label = opts.Name
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %s...", label))
	spinner.Start()

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	if err := writeOutput(output, result.Artifact); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Rendered %s", StyleHighlight.Render(label))
		printStats(result.Stats.Gates, result.Stats.Tracks, result.Stats.Width)
	}
	return nil
}
