package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/layout"
)

// ToDOT converts a circuit's derived constraint structure to Graphviz DOT
// format: one node per gate, solid edges for per-track precedence, dashed
// non-constraining edges for alignment pairs. The resulting DOT string can
// be rendered with [GraphSVG] or [GraphPNG].
//
// This is a debugging view: when a layout comes out wider than expected or
// fails with UNSAT_LAYOUT, the graph shows which chains and alignments are
// responsible.
func ToDOT(c *circuit.Circuit) string {
	p := layout.Derive(c)

	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for idx, g := range c.Gates() {
		fmt.Fprintf(&buf, "  g%d [label=%q];\n", idx, nodeLabel(idx, g))
	}

	buf.WriteString("\n")
	for _, e := range p.Edges {
		fmt.Fprintf(&buf, "  g%d -> g%d;\n", e.From, e.To)
	}
	for _, pair := range p.Aligns {
		fmt.Fprintf(&buf, "  g%d -> g%d [dir=none, style=dashed, constraint=false];\n", pair[0], pair[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(idx int, g circuit.Gate) string {
	fp := g.Footprint()
	if fp.Span == 1 {
		return fmt.Sprintf("%d: %s\ntrack %d", idx, g.Kind(), fp.Track)
	}
	return fmt.Sprintf("%d: %s\ntracks %d..%d", idx, g.Kind(), fp.Track, fp.Track+fp.Span-1)
}

// GraphSVG renders a DOT constraint graph to SVG using Graphviz.
func GraphSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// GraphPNG renders a DOT constraint graph to PNG using Graphviz.
func GraphPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
