package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
)

func buildToffoli(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	steps := []func() (int, error){
		func() (int, error) { return c.Control(1, 2, "V") },
		func() (int, error) { return c.CNOT(0, 1) },
		func() (int, error) { return c.Control(1, 2, `V^\dagger`) },
		func() (int, error) { return c.CNOT(0, 1) },
		func() (int, error) { return c.Control(0, 2, "V") },
	}
	for _, step := range steps {
		if _, err := step(); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestDocumentToffoli(t *testing.T) {
	doc, err := Document(buildToffoli(t))
	if err != nil {
		t.Fatal(err)
	}

	want := `\begin{figure}[h]
\mbox{
\Qcircuit @C=.5em @R=0em @!R {
& \qw & \qw & \ctrl{1} & \qw & \ctrl{1} & \ctrl{2} & \qw\\
& \qw & \ctrl{1} & \targ & \ctrl{1} & \targ & \qw & \qw\\
& \qw & \gate{V} & \qw & \gate{V^\dagger} & \qw & \gate{V} & \qw
}
}
\centering
\end{figure}
`
	if string(doc) != want {
		t.Errorf("document mismatch\ngot:\n%s\nwant:\n%s", doc, want)
	}
}

func TestDocumentMargins(t *testing.T) {
	c := circuit.New()
	if _, err := c.H(0); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		opts  []Option
		cells int
	}{
		{"defaults", nil, 3},
		{"zero margins", []Option{WithMargins(0, 0)}, 1},
		{"left only", []Option{WithLeftMargin(2), WithRightMargin(0)}, 3},
		{"wide right", []Option{WithMargins(0, 4)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Document(c, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			// One track: exactly one body row between header and footer.
			body := strings.Split(string(doc), "@!R {\n")[1]
			row := strings.Split(body, "\n}")[0]
			if got := strings.Count(row, "&"); got != tt.cells {
				t.Errorf("cell count = %d, want %d (row %q)", got, tt.cells, row)
			}
		})
	}
}

func TestDocumentNegativeMargin(t *testing.T) {
	c := circuit.New()
	if _, err := c.H(0); err != nil {
		t.Fatal(err)
	}

	_, err := Document(c, WithLeftMargin(-1))
	if err == nil {
		t.Fatal("Document succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidMargin) {
		t.Errorf("error code = %v, want INVALID_MARGIN", errors.GetCode(err))
	}
}

func TestDocumentPropagatesSolverFailure(t *testing.T) {
	c := circuit.New()
	a, _ := c.H(0)
	b, _ := c.X(0)
	if err := c.Align(a, b); err != nil {
		t.Fatal(err)
	}

	_, err := Document(c)
	if !errors.Is(err, errors.ErrCodeUnsatLayout) {
		t.Errorf("error code = %v, want UNSAT_LAYOUT", errors.GetCode(err))
	}
}

func TestDocumentEmptyCircuit(t *testing.T) {
	doc, err := Document(circuit.New())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(doc), `\begin{figure}[h]`) || !strings.Contains(string(doc), `\end{figure}`) {
		t.Errorf("empty circuit document lost its boilerplate:\n%s", doc)
	}
}
