package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gateloom/pkg/circfile"
	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/layout"
	"github.com/matzehuels/gateloom/pkg/observability"
	"github.com/matzehuels/gateloom/pkg/render"
)

// Run executes the load → solve → render pipeline.
//
// The whole run is synchronous; ctx flows into the observability hooks but
// the solver itself is a single uninterruptible call. Callers bound problem
// size rather than cancelling a solve.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger.With("run", shortRunID())

	result := &Result{Circuit: opts.Circuit}
	name := opts.Name
	left, right := render.DefaultLeftMargin, render.DefaultRightMargin

	// Stage 1: Load
	if opts.Input != "" {
		loadStart := time.Now()
		observability.Pipeline().OnLoadStart(ctx, opts.Input)
		c, meta, err := circfile.Load(opts.Input)
		result.Stats.LoadTime = time.Since(loadStart)
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, gateCount(c), result.Stats.LoadTime, err)
		if err != nil {
			return nil, err
		}
		result.Circuit = c
		name = meta.Name
		left, right = meta.LeftMargin, meta.RightMargin

		logger.Info("loaded circuit",
			"input", opts.Input,
			"gates", c.Len(),
			"tracks", c.Tracks(),
			"duration", result.Stats.LoadTime)
	}
	if opts.LeftMargin >= 0 {
		left = opts.LeftMargin
	}
	if opts.RightMargin >= 0 {
		right = opts.RightMargin
	}

	result.Stats.Gates = result.Circuit.Len()
	result.Stats.Tracks = result.Circuit.Tracks()

	// Stage 2: Solve
	solveStart := time.Now()
	observability.Pipeline().OnSolveStart(ctx, result.Circuit.Len())
	solved, err := layout.Solve(result.Circuit)
	result.Stats.SolveTime = time.Since(solveStart)
	observability.Pipeline().OnSolveComplete(ctx, layoutWidth(solved), result.Stats.SolveTime, err)
	if err != nil {
		return nil, err
	}
	result.Layout = solved
	result.Stats.Width = solved.Width

	logger.Info("solved layout",
		"gates", result.Stats.Gates,
		"width", solved.Width,
		"duration", result.Stats.SolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	artifact, err := renderArtifact(result.Circuit, solved, name, opts.Format, left, right)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact

	logger.Info("rendered artifact",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderArtifact produces the requested output format from a solved circuit.
func renderArtifact(c *circuit.Circuit, solved *layout.Result, name, format string, left, right int) ([]byte, error) {
	switch format {
	case FormatTex:
		return render.Document(c, render.WithMargins(left, right))
	case FormatJSON:
		return json.MarshalIndent(NewLayoutReport(name, c, solved), "", "  ")
	case FormatDOT:
		return []byte(render.ToDOT(c)), nil
	case FormatSVG:
		return render.GraphSVG(render.ToDOT(c))
	case FormatPNG:
		return render.GraphPNG(render.ToDOT(c))
	default:
		return nil, ValidateFormat(format)
	}
}

// shortRunID returns a compact identifier tying a run's log lines together.
func shortRunID() string {
	return uuid.NewString()[:8]
}

func gateCount(c *circuit.Circuit) int {
	if c == nil {
		return 0
	}
	return c.Len()
}

func layoutWidth(res *layout.Result) int {
	if res == nil {
		return 0
	}
	return res.Width
}
