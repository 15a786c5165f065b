// Package circuit provides the placement model for quantum-circuit diagrams:
// an append-only sequence of gates plus alignment constraints between them.
//
// # Overview
//
// A [Circuit] accumulates [Gate] instances in insertion order. For gates
// sharing a track, insertion order is the required temporal (left-to-right)
// order in the final diagram. [Circuit.Align] additionally forces two gates
// to start at the same time column, which is used to line up unrelated gates
// on different tracks (for example the \lstick labels at the left edge).
//
// The model is write-only: gates and constraints are never removed. Layouts
// are derived from it by the layout package and rendered by the render
// package; the circuit itself stores no positions.
//
// # Basic Usage
//
//	c := circuit.New()
//	a, _ := c.H(0)
//	b, _ := c.Wires(1)
//	_ = c.Align(a, b)
//	_, _ = c.CNOT(0, 1)
//
// # Concurrency
//
// Circuit is not safe for concurrent use without external synchronization.
// The intended usage is a single writer building the model, then solving.
package circuit

import (
	"fmt"

	"github.com/matzehuels/gateloom/pkg/errors"
)

// Circuit is an insertion-ordered collection of gates plus alignment
// constraints. Gates are identified by their insertion index.
//
// The zero value is usable, but [New] is preferred for symmetry with the
// rest of the library.
type Circuit struct {
	gates  []Gate
	aligns [][2]int
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Add appends a gate and returns its insertion index.
func (c *Circuit) Add(g Gate) int {
	c.gates = append(c.gates, g)
	return len(c.gates) - 1
}

// Align records the constraint that gates a and b must start at the same
// time column. Both indices must refer to distinct, previously added gates.
func (c *Circuit) Align(a, b int) error {
	if a == b {
		return errors.New(errors.ErrCodeInvalidConstraint, "cannot align gate %d with itself", a)
	}
	if a < 0 || a >= len(c.gates) {
		return errors.New(errors.ErrCodeInvalidConstraint, "unknown gate index: %d", a)
	}
	if b < 0 || b >= len(c.gates) {
		return errors.New(errors.ErrCodeInvalidConstraint, "unknown gate index: %d", b)
	}
	c.aligns = append(c.aligns, [2]int{a, b})
	return nil
}

// Gates returns the gates in insertion order. The returned slice is the
// circuit's backing storage; callers must not modify it.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// Aligns returns the recorded alignment pairs in insertion order.
func (c *Circuit) Aligns() [][2]int {
	return c.aligns
}

// Len returns the number of gates.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Tracks returns the number of tracks the circuit touches: the maximum of
// Track+Span over all gates. An empty circuit has zero tracks.
func (c *Circuit) Tracks() int {
	tracks := 0
	for _, g := range c.gates {
		fp := g.Footprint()
		if end := fp.Track + fp.Span; end > tracks {
			tracks = end
		}
	}
	return tracks
}

// =============================================================================
// Convenience Constructors
// =============================================================================

// Single appends a single-track gate with a raw marker token.
func (c *Circuit) Single(track int, marker string) (int, error) {
	return c.add(NewSingle(track, marker))
}

// Gate appends a boxed gate (\gate{name}) on one track.
func (c *Circuit) Gate(track int, name string) (int, error) {
	return c.Single(track, fmt.Sprintf(`\gate{%s}`, name))
}

// X appends a Pauli-X gate.
func (c *Circuit) X(track int) (int, error) { return c.Gate(track, "X") }

// Y appends a Pauli-Y gate.
func (c *Circuit) Y(track int) (int, error) { return c.Gate(track, "Y") }

// Z appends a Pauli-Z gate.
func (c *Circuit) Z(track int) (int, error) { return c.Gate(track, "Z") }

// H appends a Hadamard gate.
func (c *Circuit) H(track int) (int, error) { return c.Gate(track, "H") }

// Control appends a controlled boxed gate (\gate{name} on the target track).
func (c *Circuit) Control(control, target int, name string) (int, error) {
	return c.add(NewControlled(control, target, fmt.Sprintf(`\gate{%s}`, name), false))
}

// ControlInverted appends a controlled boxed gate with an open (inverted)
// control marker.
func (c *Circuit) ControlInverted(control, target int, name string) (int, error) {
	return c.add(NewControlled(control, target, fmt.Sprintf(`\gate{%s}`, name), true))
}

// CNOT appends a controlled-NOT gate (\targ on the target track).
func (c *Circuit) CNOT(control, target int) (int, error) {
	return c.add(NewControlled(control, target, `\targ`, false))
}

// CNOTInverted appends a controlled-NOT gate with an open control marker.
func (c *Circuit) CNOTInverted(control, target int) (int, error) {
	return c.add(NewControlled(control, target, `\targ`, true))
}

// Swap appends a swap gate between tracks a and b.
func (c *Circuit) Swap(a, b int) (int, error) {
	return c.add(NewSwap(a, b))
}

// Measure appends a measurement (\meter) on one track.
func (c *Circuit) Measure(track int) (int, error) {
	return c.Single(track, `\meter`)
}

// LStick appends a left-edge label (\lstick{label}).
func (c *Circuit) LStick(track int, label string) (int, error) {
	return c.Single(track, fmt.Sprintf(`\lstick{%s}`, label))
}

// RStick appends a right-edge label followed by a quantum wire tail.
func (c *Circuit) RStick(track int, label string) (int, error) {
	return c.Single(track, fmt.Sprintf(`\rstick{%s}\qw`, label))
}

// RStickClassical appends a right-edge label followed by a classical wire tail.
func (c *Circuit) RStickClassical(track int, label string) (int, error) {
	return c.Single(track, fmt.Sprintf(`\rstick{%s}\cw`, label))
}

// Wires appends a bundled-wire marker (\qw{/^n}) on one track.
func (c *Circuit) Wires(track int) (int, error) {
	return c.Single(track, `\qw{/^n}`)
}

// Barrier appends a barrier spanning tracks a through b.
func (c *Circuit) Barrier(a, b int) (int, error) {
	return c.add(NewBarrier(a, b))
}

// add appends a freshly constructed gate, propagating construction errors.
func (c *Circuit) add(g Gate, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return c.Add(g), nil
}
