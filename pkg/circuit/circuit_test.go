package circuit

import (
	"testing"

	"github.com/matzehuels/gateloom/pkg/errors"
)

func TestAddAssignsIndices(t *testing.T) {
	c := New()
	for want := 0; want < 3; want++ {
		idx, err := c.H(want)
		if err != nil {
			t.Fatal(err)
		}
		if idx != want {
			t.Errorf("insertion index = %d, want %d", idx, want)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestAlign(t *testing.T) {
	c := New()
	a, _ := c.H(0)
	b, _ := c.H(1)

	if err := c.Align(a, b); err != nil {
		t.Fatalf("Align(%d, %d) failed: %v", a, b, err)
	}
	if got := c.Aligns(); len(got) != 1 || got[0] != [2]int{a, b} {
		t.Errorf("Aligns() = %v, want [[%d %d]]", got, a, b)
	}
}

func TestAlignInvalid(t *testing.T) {
	c := New()
	_, _ = c.H(0)
	_, _ = c.H(1)

	tests := []struct {
		name string
		a, b int
	}{
		{"self pair", 1, 1},
		{"negative index", -1, 0},
		{"out of range", 0, 2},
		{"both out of range", 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Align(tt.a, tt.b)
			if err == nil {
				t.Fatal("Align succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConstraint) {
				t.Errorf("error code = %v, want INVALID_CONSTRAINT", errors.GetCode(err))
			}
		})
	}
}

func TestTracks(t *testing.T) {
	c := New()
	if c.Tracks() != 0 {
		t.Errorf("empty circuit Tracks() = %d, want 0", c.Tracks())
	}

	_, _ = c.H(0)
	if c.Tracks() != 1 {
		t.Errorf("Tracks() = %d, want 1", c.Tracks())
	}

	_, _ = c.Control(1, 4, "U")
	if c.Tracks() != 5 {
		t.Errorf("Tracks() = %d, want 5", c.Tracks())
	}
}

func TestSugarMarkers(t *testing.T) {
	tests := []struct {
		name   string
		build  func(c *Circuit) (int, error)
		marker string
	}{
		{"gate", func(c *Circuit) (int, error) { return c.Gate(0, "H") }, `\gate{H}`},
		{"x", func(c *Circuit) (int, error) { return c.X(0) }, `\gate{X}`},
		{"measure", func(c *Circuit) (int, error) { return c.Measure(0) }, `\meter`},
		{"lstick", func(c *Circuit) (int, error) { return c.LStick(0, `\ket{0}`) }, `\lstick{\ket{0}}`},
		{"rstick", func(c *Circuit) (int, error) { return c.RStick(0, `\ket{\psi}`) }, `\rstick{\ket{\psi}}\qw`},
		{"rstick classical", func(c *Circuit) (int, error) { return c.RStickClassical(0, "x_k") }, `\rstick{x_k}\cw`},
		{"wires", func(c *Circuit) (int, error) { return c.Wires(0) }, `\qw{/^n}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			idx, err := tt.build(c)
			if err != nil {
				t.Fatal(err)
			}
			s, ok := c.Gates()[idx].(*Single)
			if !ok {
				t.Fatalf("gate %d is %T, want *Single", idx, c.Gates()[idx])
			}
			if s.marker != tt.marker {
				t.Errorf("marker = %q, want %q", s.marker, tt.marker)
			}
		})
	}
}

func TestSugarPropagatesErrors(t *testing.T) {
	c := New()
	if _, err := c.CNOT(1, 1); !errors.Is(err, errors.ErrCodeInvalidGate) {
		t.Errorf("CNOT(1, 1) error code = %v, want INVALID_GATE", errors.GetCode(err))
	}
	if c.Len() != 0 {
		t.Errorf("failed construction still appended a gate, Len() = %d", c.Len())
	}
}
