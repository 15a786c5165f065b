// Package pipeline provides the load → solve → render pipeline for
// Gateloom.
//
// This package ties the library surfaces together for callers that start
// from a circuit manifest (or an already-built circuit) and want a finished
// artifact: the CLI uses it for every command, and embedding applications
// can call it directly. By centralizing this logic, all entry points behave
// identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Build the placement model from a TOML/JSON manifest
//  2. Solve: Compute width-minimal start columns for every gate
//  3. Render: Produce the requested artifact (tex document, layout JSON,
//     or constraint graph as DOT/SVG/PNG)
//
// Stage timings land in [Stats]; observability hooks fire around each
// stage. The core packages never log, so all progress reporting happens
// here.
//
// # Usage
//
//	result, err := pipeline.Run(ctx, pipeline.Options{
//	    Input:  "iqpe.toml",
//	    Format: pipeline.FormatTex,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifact)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
	"github.com/matzehuels/gateloom/pkg/layout"
)

// Format constants for output artifacts.
const (
	FormatTex  = "tex" // Qcircuit document
	FormatJSON = "json" // solved layout as JSON
	FormatDOT  = "dot" // constraint graph, DOT source
	FormatSVG  = "svg" // constraint graph rendered via Graphviz
	FormatPNG  = "png" // constraint graph rendered via Graphviz
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTex:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: tex, json, dot, svg, png)", format)
	}
	return nil
}

// Options contains all configuration for a pipeline run.
//
// Exactly one of Input and Circuit must be set: Input names a manifest file
// to load, Circuit supplies an already-built model (skipping the load
// stage). Margins of -1 mean "not set here"; the manifest's settings, then
// the render defaults, apply underneath.
type Options struct {
	Input       string           // manifest path (.toml or .json)
	Circuit     *circuit.Circuit // pre-built model, bypasses loading
	Name        string           // display name when Circuit is supplied directly
	Format      string           // output format, default tex
	LeftMargin  int              // -1 = use manifest/default
	RightMargin int              // -1 = use manifest/default
	Logger      *log.Logger      // nil = discard
}

// validate applies defaults and checks the option combination.
func (o *Options) validate() error {
	if o.Format == "" {
		o.Format = FormatTex
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Input == "" && o.Circuit == nil {
		return errors.New(errors.ErrCodeInvalidManifest, "either Input or Circuit is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Circuit is the placement model the run operated on.
	Circuit *circuit.Circuit

	// Layout is the solved assignment.
	Layout *layout.Result

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// Stats contains size and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Gates      int
	Tracks     int
	Width      int
	LoadTime   time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// GateReport is one gate's entry in the JSON layout artifact.
type GateReport struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Column int    `json:"column"`
	Track  int    `json:"track"`
	Span   int    `json:"span"`
	Width  int    `json:"width"`
}

// LayoutReport is the JSON layout artifact: the solved positions in a
// machine-readable debug view.
type LayoutReport struct {
	Name   string       `json:"name,omitempty"`
	Width  int          `json:"width"`
	Tracks int          `json:"tracks"`
	Gates  []GateReport `json:"gates"`
}

// NewLayoutReport assembles the debug view of a solved circuit.
func NewLayoutReport(name string, c *circuit.Circuit, res *layout.Result) *LayoutReport {
	report := &LayoutReport{
		Name:   name,
		Width:  res.Width,
		Tracks: c.Tracks(),
		Gates:  make([]GateReport, c.Len()),
	}
	for idx, g := range c.Gates() {
		fp := g.Footprint()
		report.Gates[idx] = GateReport{
			Index:  idx,
			Kind:   g.Kind(),
			Column: res.Columns[idx],
			Track:  fp.Track,
			Span:   fp.Span,
			Width:  fp.Width,
		}
	}
	return report
}
