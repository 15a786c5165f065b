package circuit

import (
	"fmt"

	"github.com/matzehuels/gateloom/pkg/canvas"
	"github.com/matzehuels/gateloom/pkg/errors"
)

// Footprint describes the area a gate reserves in the diagram: the lowest
// track it touches, the number of consecutive tracks it spans, and the
// number of time columns it consumes. No other gate may share a reserved
// track at an overlapping column.
type Footprint struct {
	Track int // lowest track index (>= 0)
	Span  int // number of consecutive tracks reserved (>= 1)
	Width int // number of time columns (>= 1)
}

// Gate is a drawing primitive. The variant set is closed: [Single],
// [Controlled], [Swap], and [Barrier]. A gate reports its footprint for the
// layout solver and stamps its markers into a canvas once a start column
// has been assigned. Gates are immutable after construction.
type Gate interface {
	// Kind returns the variant name ("single", "controlled", "swap", "barrier").
	Kind() string

	// Footprint returns the gate's reserved area.
	Footprint() Footprint

	// Draw stamps the gate's markers into g at the given start column.
	// It writes only within the footprint's track span; a multi-track gate
	// may leave intervening cells untouched even though they are reserved.
	Draw(col int, g *canvas.Grid)
}

// =============================================================================
// Single
// =============================================================================

// Single is a one-track, one-column gate carrying an opaque marker token.
type Single struct {
	track  int
	marker string
}

// NewSingle creates a single-track gate stamping marker at its cell.
func NewSingle(track int, marker string) (*Single, error) {
	if track < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGate, "negative track index: %d", track)
	}
	return &Single{track: track, marker: marker}, nil
}

func (s *Single) Kind() string { return "single" }

func (s *Single) Footprint() Footprint {
	return Footprint{Track: s.track, Span: 1, Width: 1}
}

func (s *Single) Draw(col int, g *canvas.Grid) {
	g.Set(s.track, col, s.marker)
}

// =============================================================================
// Controlled
// =============================================================================

// Controlled is a two-track gate with a control marker on one track and a
// label on the other. Every track between control and target is reserved,
// but only the two endpoint cells are stamped; the vertical connector is
// drawn by the typesetting target, not by this renderer.
type Controlled struct {
	control  int
	target   int
	label    string
	inverted bool
}

// NewControlled creates a controlled gate. The control marker is \ctrl{d}
// with d the signed track offset to the target, or \ctrlo{d} when inverted.
func NewControlled(control, target int, label string, inverted bool) (*Controlled, error) {
	if control < 0 || target < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGate, "negative track index: control=%d target=%d", control, target)
	}
	if control == target {
		return nil, errors.New(errors.ErrCodeInvalidGate, "control and target on the same track: %d", control)
	}
	return &Controlled{control: control, target: target, label: label, inverted: inverted}, nil
}

func (c *Controlled) Kind() string { return "controlled" }

func (c *Controlled) Footprint() Footprint {
	return Footprint{Track: min(c.control, c.target), Span: abs(c.control-c.target) + 1, Width: 1}
}

func (c *Controlled) Draw(col int, g *canvas.Grid) {
	inv := ""
	if c.inverted {
		inv = "o"
	}
	g.Set(c.control, col, fmt.Sprintf(`\ctrl%s{%d}`, inv, c.target-c.control))
	g.Set(c.target, col, c.label)
}

// =============================================================================
// Swap
// =============================================================================

// Swap exchanges two tracks, drawing swap markers on both endpoints and a
// wire-crossing connector on every intervening track.
type Swap struct {
	low  int
	high int
}

// NewSwap creates a swap gate between tracks a and b.
func NewSwap(a, b int) (*Swap, error) {
	if a < 0 || b < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGate, "negative track index: a=%d b=%d", a, b)
	}
	if a == b {
		return nil, errors.New(errors.ErrCodeInvalidGate, "swap endpoints on the same track: %d", a)
	}
	return &Swap{low: min(a, b), high: max(a, b)}, nil
}

func (s *Swap) Kind() string { return "swap" }

func (s *Swap) Footprint() Footprint {
	return Footprint{Track: s.low, Span: s.high - s.low + 1, Width: 1}
}

func (s *Swap) Draw(col int, g *canvas.Grid) {
	g.Set(s.low, col, `\qswap`)
	for t := s.low + 1; t < s.high; t++ {
		g.Set(t, col, `\qw \qwx`)
	}
	g.Set(s.high, col, `\qswap \qwx`)
}

// =============================================================================
// Barrier
// =============================================================================

// Barrier marks a synchronization boundary across a range of tracks. Its
// footprint matches a swap over the same tracks, but only the lowest cell
// is stamped; the \barrier macro spans the rest by itself.
type Barrier struct {
	low  int
	high int
}

// NewBarrier creates a barrier spanning tracks a through b inclusive.
func NewBarrier(a, b int) (*Barrier, error) {
	if a < 0 || b < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGate, "negative track index: a=%d b=%d", a, b)
	}
	if a == b {
		return nil, errors.New(errors.ErrCodeInvalidGate, "barrier endpoints on the same track: %d", a)
	}
	return &Barrier{low: min(a, b), high: max(a, b)}, nil
}

func (b *Barrier) Kind() string { return "barrier" }

func (b *Barrier) Footprint() Footprint {
	return Footprint{Track: b.low, Span: b.high - b.low + 1, Width: 1}
}

func (b *Barrier) Draw(col int, g *canvas.Grid) {
	g.Set(b.low, col, fmt.Sprintf(`\qw \barrier{%d}`, b.high-b.low))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
