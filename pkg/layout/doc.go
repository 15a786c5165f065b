// Package layout assigns each gate of a circuit a start column such that
// the total diagram width is minimal.
//
// # Problem
//
// The layout problem is minimum-makespan scheduling with per-track
// precedence and explicit synchronization: gates sharing a track must keep
// their insertion order without overlapping, aligned gates must share a
// start column, and the rightmost occupied column must be as small as
// possible.
//
// # Algorithm
//
// [Solve] works directly on the constraint structure instead of delegating
// to a generic solver:
//
//  1. Alignment pairs are collapsed into synchronization classes with a
//     union-find structure.
//  2. A single pass over the gates in insertion order derives precedence
//     edges using a last-gate-per-track slot array (see [Derive]).
//  3. The edges are projected onto the classes and the class graph is
//     topologically sorted. An edge inside a single class, or a cycle
//     among classes, means the constraints contradict each other and
//     solving fails with UNSAT_LAYOUT.
//  4. Longest-path relaxation in topological order yields each class's
//     start column.
//
// The result is the component-wise least solution of the underlying
// difference-constraint system, so the width is provably minimal and the
// outcome is deterministic: solving the same circuit twice returns
// identical columns.
//
// # Usage
//
//	res, err := layout.Solve(c)
//	if err != nil {
//	    return err // contradictory constraints, the model must be fixed
//	}
//	fmt.Println(res.Width, res.Columns)
package layout
