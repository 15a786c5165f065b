package render_test

import (
	"fmt"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/render"
)

func ExampleDocument() {
	// Two independent gates, aligned into the same column.
	c := circuit.New()
	a, _ := c.H(0)
	b, _ := c.H(1)
	_ = c.Align(a, b)

	doc, err := render.Document(c, render.WithMargins(0, 0))
	if err != nil {
		panic(err)
	}
	fmt.Print(string(doc))
	// Output:
	// \begin{figure}[h]
	// \mbox{
	// \Qcircuit @C=.5em @R=0em @!R {
	// & \gate{H}\\
	// & \gate{H}
	// }
	// }
	// \centering
	// \end{figure}
}
