package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
	"github.com/matzehuels/gateloom/pkg/pipeline"
)

// defaultQFTTracks is the qubit count for the built-in QFT example.
const defaultQFTTracks = 8

// exampleSpec is one entry of the built-in gallery. Build returns the
// circuit plus the margins the example was designed with.
type exampleSpec struct {
	Name  string
	Desc  string
	Build func(tracks int) (*circuit.Circuit, int, int, error)
}

// gallery holds the built-in example circuits.
var gallery = []exampleSpec{
	{
		Name:  "toffoli",
		Desc:  "Toffoli gate decomposed into controlled-V and CNOT",
		Build: buildToffoliExample,
	},
	{
		Name:  "qft",
		Desc:  "Quantum Fourier transform with final qubit reversal",
		Build: buildQFTExample,
	},
	{
		Name:  "iqpe",
		Desc:  "Iterative quantum phase estimation round",
		Build: buildIQPEExample,
	},
}

// examplesCommand creates the examples command: renders a built-in circuit
// to stdout, with an interactive picker when no name is given.
func (c *CLI) examplesCommand() *cobra.Command {
	var output string
	var list bool
	var tracks int

	cmd := &cobra.Command{
		Use:   "examples [name]",
		Short: "Render one of the built-in example circuits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				printGallery()
				return nil
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				selected, err := pickExample()
				if err != nil {
					return err
				}
				if selected == "" {
					printDetail("No selection made")
					return nil
				}
				name = selected
			}

			spec := findExample(name)
			if spec == nil {
				return errors.New(errors.ErrCodeInvalidManifest,
					"unknown example %q (try --list)", name)
			}

			circ, left, right, err := spec.Build(tracks)
			if err != nil {
				return err
			}
			return c.runPipeline(cmd.Context(), pipeline.Options{
				Circuit:     circ,
				Name:        spec.Name,
				Format:      pipeline.FormatTex,
				LeftMargin:  left,
				RightMargin: right,
			}, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&list, "list", false, "list the built-in examples")
	cmd.Flags().IntVar(&tracks, "tracks", defaultQFTTracks, "qubit count for the qft example")

	return cmd
}

// findExample returns the gallery entry with the given name, or nil.
func findExample(name string) *exampleSpec {
	for i := range gallery {
		if gallery[i].Name == name {
			return &gallery[i]
		}
	}
	return nil
}

// printGallery prints the example table.
func printGallery() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(gallery))
	for i, spec := range gallery {
		rows[i] = []string{spec.Name, spec.Desc}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// pickExample runs the interactive picker and returns the chosen name,
// or "" when the user quit without selecting.
func pickExample() (string, error) {
	m := NewExampleListModel(gallery)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(ExampleListModel)
	if !ok || fm.Selected == nil {
		return "", nil
	}
	return fm.Selected.Name, nil
}

// =============================================================================
// Gallery Builders
// =============================================================================

// exampleBuilder accumulates the first gate-construction error so the
// builders read as straight-line circuit descriptions.
type exampleBuilder struct {
	circ *circuit.Circuit
	err  error
}

func newExampleBuilder() *exampleBuilder {
	return &exampleBuilder{circ: circuit.New()}
}

func (b *exampleBuilder) add(idx int, err error) int {
	if b.err == nil {
		b.err = err
	}
	return idx
}

func (b *exampleBuilder) align(x, y int) {
	if b.err == nil {
		b.err = b.circ.Align(x, y)
	}
}

// buildToffoliExample builds the standard Toffoli decomposition.
func buildToffoliExample(int) (*circuit.Circuit, int, int, error) {
	b := newExampleBuilder()
	b.add(b.circ.Control(1, 2, "V"))
	b.add(b.circ.CNOT(0, 1))
	b.add(b.circ.Control(1, 2, `V^\dagger`))
	b.add(b.circ.CNOT(0, 1))
	b.add(b.circ.Control(0, 2, "V"))
	return b.circ, 1, 1, b.err
}

// buildQFTExample builds an n-qubit quantum Fourier transform: aligned
// input labels, a Hadamard/controlled-rotation ladder, and swaps reversing
// the qubit order.
func buildQFTExample(n int) (*circuit.Circuit, int, int, error) {
	if n < 2 {
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidGate, "qft needs at least 2 tracks, got %d", n)
	}

	b := newExampleBuilder()
	first := b.add(b.circ.LStick(0, "q_0"))
	for i := 1; i < n; i++ {
		idx := b.add(b.circ.LStick(i, fmt.Sprintf("q_%d", i)))
		b.align(first, idx)
	}

	for i := 0; i < n; i++ {
		b.add(b.circ.H(i))
		for j := i + 1; j < n; j++ {
			b.add(b.circ.Control(j, i, fmt.Sprintf("R_%d", j-i+1)))
		}
	}

	for i := 0; i < n/2; i++ {
		b.add(b.circ.Swap(i, n-i-1))
	}
	return b.circ, 0, 1, b.err
}

// buildIQPEExample builds one round of iterative quantum phase estimation.
func buildIQPEExample(int) (*circuit.Circuit, int, int, error) {
	b := newExampleBuilder()
	in0 := b.add(b.circ.LStick(0, `\ket{0}`))
	in1 := b.add(b.circ.LStick(1, `\ket{\psi}`))
	b.align(in0, in1)

	b.add(b.circ.H(0))
	b.add(b.circ.Wires(1))
	b.add(b.circ.Control(0, 1, `U^{2^{k-1}}`))
	b.add(b.circ.Gate(0, `R_Z(\omega_k)`))
	b.add(b.circ.Wires(1))
	b.add(b.circ.H(0))
	b.add(b.circ.Measure(0))

	out0 := b.add(b.circ.RStickClassical(0, "x_k"))
	out1 := b.add(b.circ.RStick(1, `\ket{\psi}`))
	b.align(out0, out1)
	return b.circ, 0, 0, b.err
}
