// Package canvas provides the 2-D cell grid that circuit diagrams are
// stamped into before serialization.
//
// A [Grid] holds one string token per cell, with rows corresponding to
// tracks (qubit or classical-bit lines) and columns to time columns.
// Grids are created fresh for each render, filled entirely with an idle
// token, written to by gate draw routines, and discarded after the body
// of the document has been assembled.
//
// # Concurrency
//
// Grid is not safe for concurrent writes. Renders are single-threaded, so
// no synchronization is provided.
package canvas

// Grid is a rows × cols matrix of cell tokens.
//
// The zero value is not usable - use [New] to create a Grid.
type Grid struct {
	cells [][]string
	rows  int
	cols  int
}

// New creates a grid with the given dimensions, every cell initialized to
// the fill token. It returns nil if either dimension is not positive.
func New(rows, cols int, fill string) *Grid {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cells := make([][]string, rows)
	for r := range cells {
		row := make([]string, cols)
		for c := range row {
			row[c] = fill
		}
		cells[r] = row
	}
	return &Grid{cells: cells, rows: rows, cols: cols}
}

// Rows returns the number of rows (tracks).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (time columns).
func (g *Grid) Cols() int { return g.cols }

// Set writes token into the cell at (row, col).
// It panics if the position is out of bounds; callers are expected to stamp
// only within the footprint the layout solver reserved for them.
func (g *Grid) Set(row, col int, token string) {
	g.cells[row][col] = token
}

// Get returns the token at (row, col).
// It panics if the position is out of bounds.
func (g *Grid) Get(row, col int) string {
	return g.cells[row][col]
}

// Row returns the tokens of one row in column order. The returned slice is
// the grid's backing storage; callers must not modify it.
func (g *Grid) Row(row int) []string {
	return g.cells[row]
}
