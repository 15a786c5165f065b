package layout

import "github.com/matzehuels/gateloom/pkg/circuit"

// Edge is a derived precedence constraint: the gate at index From must end
// before the gate at index To starts, i.e. column(From) + Gap <= column(To).
// Gap is always the width of the From gate.
type Edge struct {
	From int
	To   int
	Gap  int
}

// Problem is the solver's view of a circuit: per-gate widths, the derived
// precedence edges, and the caller's alignment pairs. It is exposed so that
// tests and the constraint-graph exporter can inspect the derived structure
// without re-deriving it.
type Problem struct {
	Widths []int
	Edges  []Edge
	Aligns [][2]int
}

// Derive builds the constraint problem for a circuit.
//
// Precedence edges come from a single pass over the gates in insertion
// order with a last-gate-per-track slot array: for every track in a gate's
// span, the previously remembered gate on that track (if any) must precede
// it. A gate spanning several tracks can pick up the same predecessor on
// more than one track; such edges are emitted once.
func Derive(c *circuit.Circuit) *Problem {
	gates := c.Gates()
	p := &Problem{
		Widths: make([]int, len(gates)),
		Aligns: c.Aligns(),
	}

	last := make([]int, c.Tracks())
	for i := range last {
		last[i] = -1
	}

	for idx, g := range gates {
		fp := g.Footprint()
		p.Widths[idx] = fp.Width

		var preds []int
		for t := fp.Track; t < fp.Track+fp.Span; t++ {
			if prev := last[t]; prev != -1 && !contains(preds, prev) {
				preds = append(preds, prev)
				p.Edges = append(p.Edges, Edge{From: prev, To: idx, Gap: gates[prev].Footprint().Width})
			}
			last[t] = idx
		}
	}
	return p
}

// contains reports whether s holds v. Spans are a handful of tracks, so a
// linear scan beats a map here.
func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
