// Package pkg provides the core libraries for Gateloom circuit typesetting.
//
// # Overview
//
// Gateloom turns quantum-circuit descriptions into compact LaTeX Qcircuit
// diagrams. Gates are placed on parallel tracks and packed into as few
// columns as the circuit's ordering and alignment constraints allow. The
// pkg directory is organized into four main areas:
//
//  1. [circuit] - Domain model (gates, tracks, alignment constraints)
//  2. [layout] - Column assignment (constraint derivation + width minimization)
//  3. [render] - Output generation (Qcircuit documents, DOT graphs)
//  4. [pipeline] - Orchestration (load → solve → render)
//
// # Architecture
//
// The typical data flow through Gateloom:
//
//	Circuit Manifest (TOML/JSON) or programmatic builder
//	         ↓
//	    [circfile] package (parse manifests into circuits)
//	         ↓
//	    [circuit] package (gates + alignment constraints)
//	         ↓
//	    [layout] package (minimal-width column assignment)
//	         ↓
//	    [render] package (canvas stamping + document assembly)
//	         ↓
//	    LaTeX/JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Build a circuit and render a Qcircuit document:
//
//	import (
//	    "github.com/matzehuels/gateloom/pkg/circuit"
//	    "github.com/matzehuels/gateloom/pkg/render"
//	)
//
//	// 1. Describe the circuit
//	c := circuit.New()
//	c.H(0)
//	c.CNOT(0, 1)
//	c.Measure(0)
//
//	// 2. Render (solving the layout along the way)
//	doc, _ := render.Document(c)
//
// # Main Packages
//
// ## Domain Logic
//
// [circuit] - Gate catalog and circuit builder. Single-track markers,
// controlled gates, swaps, and barriers, plus sugar constructors for the
// common gates (H, X, CNOT, measurements, wire labels).
//
// [layout] - Width-minimizing column solver. Alignment pairs are merged
// with a union-find, track occupancy yields precedence edges, and a
// longest-path pass over the condensed order produces the earliest
// feasible column for every gate.
//
// [render] - Canvas stamping and output sinks: Qcircuit LaTeX documents
// with configurable margins, and Graphviz constraint graphs (DOT/SVG/PNG).
//
// ## Input
//
// [circfile] - TOML and JSON circuit manifests with per-file metadata
// (name, margins) and named gates that alignment constraints refer to.
//
// ## Orchestration
//
// [pipeline] - End-to-end runs (load → solve → render) with per-stage
// timing, structured logging, and [observability] hooks.
//
// ## Supporting Packages
//
// [canvas] - Rectangular marker grid the renderer stamps gates onto.
//
// [errors] - Coded errors shared across packages (invalid gates,
// unsatisfiable layouts, malformed manifests).
//
// [buildinfo] - Version metadata injected at build time.
package pkg
