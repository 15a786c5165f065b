package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
)

func bellCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	if _, err := c.H(0); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CNOT(0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Measure(0); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRunTex(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Circuit:     bellCircuit(t),
		Format:      FormatTex,
		LeftMargin:  -1,
		RightMargin: -1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(result.Artifact), `\begin{figure}[h]`) {
		t.Errorf("artifact is not a figure:\n%s", result.Artifact)
	}
	if result.Stats.Gates != 3 || result.Stats.Tracks != 2 {
		t.Errorf("Stats = %+v, want 3 gates on 2 tracks", result.Stats)
	}
	if result.Stats.Width != 3 {
		t.Errorf("Width = %d, want 3", result.Stats.Width)
	}
	if result.Layout == nil || len(result.Layout.Columns) != 3 {
		t.Errorf("Layout = %+v, want 3 columns", result.Layout)
	}
}

func TestRunJSON(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Circuit:     bellCircuit(t),
		Name:        "bell",
		Format:      FormatJSON,
		LeftMargin:  -1,
		RightMargin: -1,
	})
	if err != nil {
		t.Fatal(err)
	}

	var report LayoutReport
	if err := json.Unmarshal(result.Artifact, &report); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if report.Name != "bell" || report.Width != 3 || report.Tracks != 2 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Gates) != 3 {
		t.Fatalf("report has %d gates, want 3", len(report.Gates))
	}
	if report.Gates[1].Kind != "controlled" || report.Gates[1].Span != 2 {
		t.Errorf("Gates[1] = %+v", report.Gates[1])
	}
}

func TestRunDOT(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Circuit:     bellCircuit(t),
		Format:      FormatDOT,
		LeftMargin:  -1,
		RightMargin: -1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(result.Artifact), "digraph constraints {") {
		t.Errorf("artifact is not DOT:\n%s", result.Artifact)
	}
}

func TestRunFromManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bell.toml")
	manifest := "name = \"bell\"\nleft-margin = 0\nright-margin = 0\n\n" +
		"[[gate]]\nkind = \"h\"\ntrack = 0\n\n" +
		"[[gate]]\nkind = \"cnot\"\ncontrol = 0\ntarget = 1\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(context.Background(), Options{
		Input:       path,
		Format:      FormatTex,
		LeftMargin:  -1,
		RightMargin: -1,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Manifest margins are zero, so the body has exactly width columns.
	if strings.Contains(string(result.Artifact), `\qw & \gate{H}`) {
		t.Errorf("manifest margins were not applied:\n%s", result.Artifact)
	}
	if result.Stats.Gates != 2 {
		t.Errorf("Gates = %d, want 2", result.Stats.Gates)
	}
}

func TestRunMarginOverride(t *testing.T) {
	c := circuit.New()
	if _, err := c.H(0); err != nil {
		t.Fatal(err)
	}

	result, err := Run(context.Background(), Options{
		Circuit:     c,
		Format:      FormatTex,
		LeftMargin:  0,
		RightMargin: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(result.Artifact), `\qw`) {
		t.Errorf("zero-margin single gate should have no idle cells:\n%s", result.Artifact)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{
			name: "no input or circuit",
			opts: Options{Format: FormatTex},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "unknown format",
			opts: Options{Circuit: circuit.New(), Format: "pdf"},
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("Run succeeded, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRunUnsatisfiable(t *testing.T) {
	c := circuit.New()
	a, _ := c.H(0)
	b, _ := c.X(0)
	if err := c.Align(a, b); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Options{
		Circuit:     c,
		Format:      FormatTex,
		LeftMargin:  -1,
		RightMargin: -1,
	})
	if !errors.Is(err, errors.ErrCodeUnsatLayout) {
		t.Errorf("error code = %v, want UNSAT_LAYOUT", errors.GetCode(err))
	}
}
