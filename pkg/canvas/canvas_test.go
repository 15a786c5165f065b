package canvas

import "testing"

func TestNew(t *testing.T) {
	g := New(2, 3, `\qw`)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if got := g.Get(r, c); got != `\qw` {
				t.Errorf("Get(%d,%d) = %q, want fill token", r, c, got)
			}
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g := New(tt.rows, tt.cols, ""); g != nil {
				t.Errorf("New(%d, %d) = %v, want nil", tt.rows, tt.cols, g)
			}
		})
	}
}

func TestSetGet(t *testing.T) {
	g := New(3, 4, `\qw`)
	g.Set(1, 2, `\gate{H}`)

	if got := g.Get(1, 2); got != `\gate{H}` {
		t.Errorf("Get(1,2) = %q, want \\gate{H}", got)
	}
	if got := g.Get(1, 1); got != `\qw` {
		t.Errorf("Get(1,1) = %q, neighboring cell was overwritten", got)
	}
}

func TestRow(t *testing.T) {
	g := New(2, 2, `\qw`)
	g.Set(0, 1, `\meter`)

	row := g.Row(0)
	if len(row) != 2 {
		t.Fatalf("len(Row(0)) = %d, want 2", len(row))
	}
	if row[0] != `\qw` || row[1] != `\meter` {
		t.Errorf("Row(0) = %v", row)
	}
}
