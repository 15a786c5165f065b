package layout

import (
	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
)

// Result is a solved layout: one start column per gate (indexed by
// insertion order) and the total width, the maximum of column + width over
// all gates. Both satisfy every precedence and alignment constraint, and
// the width is minimal among all feasible assignments.
type Result struct {
	Columns []int
	Width   int
}

// Solve computes a width-minimal layout for the circuit.
//
// It fails with UNSAT_LAYOUT when the constraints contradict each other:
// aligning two gates that are ordered by a precedence chain, directly or
// transitively, leaves no feasible assignment. That is a defect in the
// supplied model, not a transient condition, so there is no retry.
func Solve(c *circuit.Circuit) (*Result, error) {
	n := c.Len()
	if n == 0 {
		return &Result{}, nil
	}

	p := Derive(c)

	uf := newUnionFind(n)
	for _, pair := range p.Aligns {
		uf.union(pair[0], pair[1])
	}

	// Project precedence edges onto synchronization classes. An edge whose
	// endpoints collapse into the same class requires a gate to start at
	// least one column after itself.
	adj := make([][]Edge, n)
	indeg := make([]int, n)
	classes := 0
	for i := 0; i < n; i++ {
		if uf.find(i) == i {
			classes++
		}
	}
	for _, e := range p.Edges {
		from, to := uf.find(e.From), uf.find(e.To)
		if from == to {
			return nil, errors.New(errors.ErrCodeUnsatLayout,
				"alignment conflicts with ordering between gates %d and %d", e.From, e.To)
		}
		adj[from] = append(adj[from], Edge{From: from, To: to, Gap: e.Gap})
		indeg[to]++
	}

	// Kahn topological sort with longest-path relaxation. When a class is
	// dequeued all of its predecessors are final, so its start column is
	// the longest incoming chain.
	start := make([]int, n)
	queue := make([]int, 0, classes)
	for i := 0; i < n; i++ {
		if uf.find(i) == i && indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	processed := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		processed++
		for _, e := range adj[u] {
			if s := start[u] + e.Gap; s > start[e.To] {
				start[e.To] = s
			}
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}
	if processed < classes {
		return nil, errors.New(errors.ErrCodeUnsatLayout,
			"alignment and ordering constraints form a cycle")
	}

	res := &Result{Columns: make([]int, n)}
	for i := 0; i < n; i++ {
		col := start[uf.find(i)]
		res.Columns[i] = col
		if end := col + p.Widths[i]; end > res.Width {
			res.Width = end
		}
	}
	return res, nil
}
