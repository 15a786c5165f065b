// Package render turns a circuit and its solved layout into the final
// diagram document, and exports the derived constraint graph for layout
// debugging.
//
// The document target is the LaTeX Qcircuit macro package: the solved grid
// is emitted as rows of cell tokens wrapped in fixed figure boilerplate.
// Rendering solves the circuit on every call; nothing is cached.
package render

import (
	"bytes"
	"strings"

	"github.com/matzehuels/gateloom/pkg/canvas"
	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
	"github.com/matzehuels/gateloom/pkg/layout"
)

// tokenIdle fills every cell no gate stamps over.
const tokenIdle = `\qw`

// Default margins: one idle column on each side of the solved layout.
const (
	DefaultLeftMargin  = 1
	DefaultRightMargin = 1
)

const docHeader = `\begin{figure}[h]
\mbox{
\Qcircuit @C=.5em @R=0em @!R {
`

const docFooter = `
}
}
\centering
\end{figure}
`

// Option configures document rendering.
type Option func(*config)

type config struct {
	left  int
	right int
}

// WithLeftMargin sets the number of idle columns prepended to the layout.
func WithLeftMargin(n int) Option {
	return func(c *config) { c.left = n }
}

// WithRightMargin sets the number of idle columns appended to the layout.
func WithRightMargin(n int) Option {
	return func(c *config) { c.right = n }
}

// WithMargins sets both margins at once.
func WithMargins(left, right int) Option {
	return func(c *config) { c.left, c.right = left, right }
}

// Document solves the circuit and serializes it as a Qcircuit figure.
//
// Margins default to one idle column on each side; negative margins fail
// with INVALID_MARGIN. Solver failures propagate unchanged.
func Document(c *circuit.Circuit, opts ...Option) ([]byte, error) {
	cfg := config{left: DefaultLeftMargin, right: DefaultRightMargin}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.left < 0 || cfg.right < 0 {
		return nil, errors.New(errors.ErrCodeInvalidMargin,
			"margins must be non-negative, got left=%d right=%d", cfg.left, cfg.right)
	}

	res, err := layout.Solve(c)
	if err != nil {
		return nil, err
	}
	grid := stamp(c, res, cfg)

	var buf bytes.Buffer
	buf.WriteString(docHeader)
	writeBody(&buf, grid)
	buf.WriteString(docFooter)
	return buf.Bytes(), nil
}

// stamp fills a fresh grid with idle tokens and draws every gate at its
// solved column, shifted by the left margin. Returns nil for an empty
// circuit.
func stamp(c *circuit.Circuit, res *layout.Result, cfg config) *canvas.Grid {
	grid := canvas.New(c.Tracks(), res.Width+cfg.left+cfg.right, tokenIdle)
	if grid == nil {
		return nil
	}
	for idx, g := range c.Gates() {
		g.Draw(res.Columns[idx]+cfg.left, grid)
	}
	return grid
}

// writeBody emits the grid rows: each prefixed with "& ", cells joined by
// " & ", rows joined by a LaTeX row break.
func writeBody(buf *bytes.Buffer, grid *canvas.Grid) {
	if grid == nil {
		return
	}
	for r := 0; r < grid.Rows(); r++ {
		if r > 0 {
			buf.WriteString("\\\\\n")
		}
		buf.WriteString("& ")
		buf.WriteString(strings.Join(grid.Row(r), " & "))
	}
}
