// Package circfile loads declarative circuit descriptions from TOML or
// JSON manifests and builds the corresponding placement model.
//
// # Format
//
// A manifest holds optional document settings, a list of gates, and a list
// of alignment pairs referencing gates by their optional id:
//
//	name = "iqpe"
//	left-margin = 0
//
//	[[gate]]
//	id = "in0"
//	kind = "lstick"
//	track = 0
//	label = '\ket{0}'
//
//	[[gate]]
//	kind = "control"
//	control = 0
//	target = 1
//	label = 'U^{2^{k-1}}'
//
//	[[align]]
//	a = "in0"
//	b = "in1"
//
// The JSON form carries the same shape with snake_case keys and gates/aligns
// arrays. [Load] dispatches on the file extension.
//
// Schema violations (unknown kind, missing field, duplicate id, alignment to
// an unknown id) fail with INVALID_MANIFEST; invalid gate parameters surface
// the catalog's INVALID_GATE unchanged.
package circfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gateloom/pkg/circuit"
	"github.com/matzehuels/gateloom/pkg/errors"
)

// Meta carries the document settings a manifest declares alongside its
// gates. Margins default to one idle column per side when the manifest
// leaves them unset.
type Meta struct {
	Name        string
	LeftMargin  int
	RightMargin int
}

type manifest struct {
	Name        string      `toml:"name" json:"name"`
	LeftMargin  *int        `toml:"left-margin" json:"left_margin"`
	RightMargin *int        `toml:"right-margin" json:"right_margin"`
	Gates       []gateSpec  `toml:"gate" json:"gates"`
	Aligns      []alignSpec `toml:"align" json:"aligns"`
}

type gateSpec struct {
	ID        string `toml:"id" json:"id,omitempty"`
	Kind      string `toml:"kind" json:"kind"`
	Track     *int   `toml:"track" json:"track,omitempty"`
	Label     string `toml:"label" json:"label,omitempty"`
	Control   *int   `toml:"control" json:"control,omitempty"`
	Target    *int   `toml:"target" json:"target,omitempty"`
	Inverted  bool   `toml:"inverted" json:"inverted,omitempty"`
	Classical bool   `toml:"classical" json:"classical,omitempty"`
	A         *int   `toml:"a" json:"a,omitempty"`
	B         *int   `toml:"b" json:"b,omitempty"`
}

type alignSpec struct {
	A string `toml:"a" json:"a"`
	B string `toml:"b" json:"b"`
}

// Load reads a circuit manifest from disk, dispatching on the file
// extension (.toml or .json).
func Load(path string) (*circuit.Circuit, Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Meta{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, Meta{}, errors.New(errors.ErrCodeInvalidManifest,
			"unsupported manifest extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// ParseTOML builds a circuit from TOML manifest data.
func ParseTOML(data []byte) (*circuit.Circuit, Meta, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, Meta{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse TOML manifest")
	}
	return build(&m)
}

// ParseJSON builds a circuit from JSON manifest data.
func ParseJSON(data []byte) (*circuit.Circuit, Meta, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, Meta{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse JSON manifest")
	}
	return build(&m)
}

func build(m *manifest) (*circuit.Circuit, Meta, error) {
	meta := Meta{Name: m.Name, LeftMargin: 1, RightMargin: 1}
	if m.LeftMargin != nil {
		meta.LeftMargin = *m.LeftMargin
	}
	if m.RightMargin != nil {
		meta.RightMargin = *m.RightMargin
	}

	c := circuit.New()
	ids := make(map[string]int)
	for _, spec := range m.Gates {
		idx, err := addGate(c, &spec)
		if err != nil {
			return nil, Meta{}, err
		}
		if spec.ID != "" {
			if _, exists := ids[spec.ID]; exists {
				return nil, Meta{}, errors.New(errors.ErrCodeInvalidManifest, "duplicate gate id %q", spec.ID)
			}
			ids[spec.ID] = idx
		}
	}

	for _, a := range m.Aligns {
		ia, ok := ids[a.A]
		if !ok {
			return nil, Meta{}, errors.New(errors.ErrCodeInvalidManifest, "align references unknown gate id %q", a.A)
		}
		ib, ok := ids[a.B]
		if !ok {
			return nil, Meta{}, errors.New(errors.ErrCodeInvalidManifest, "align references unknown gate id %q", a.B)
		}
		if err := c.Align(ia, ib); err != nil {
			return nil, Meta{}, err
		}
	}
	return c, meta, nil
}

// addGate dispatches one gate spec to the matching circuit operation.
func addGate(c *circuit.Circuit, spec *gateSpec) (int, error) {
	switch spec.Kind {
	case "single":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.Single(track, spec.Label)
	case "gate":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.Gate(track, spec.Label)
	case "x", "y", "z", "h":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.Gate(track, strings.ToUpper(spec.Kind))
	case "control":
		control, err := need(spec, "control", spec.Control)
		if err != nil {
			return 0, err
		}
		target, err := need(spec, "target", spec.Target)
		if err != nil {
			return 0, err
		}
		if spec.Inverted {
			return c.ControlInverted(control, target, spec.Label)
		}
		return c.Control(control, target, spec.Label)
	case "cnot":
		control, err := need(spec, "control", spec.Control)
		if err != nil {
			return 0, err
		}
		target, err := need(spec, "target", spec.Target)
		if err != nil {
			return 0, err
		}
		if spec.Inverted {
			return c.CNOTInverted(control, target)
		}
		return c.CNOT(control, target)
	case "swap", "barrier":
		a, err := need(spec, "a", spec.A)
		if err != nil {
			return 0, err
		}
		b, err := need(spec, "b", spec.B)
		if err != nil {
			return 0, err
		}
		if spec.Kind == "swap" {
			return c.Swap(a, b)
		}
		return c.Barrier(a, b)
	case "measure":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.Measure(track)
	case "lstick":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.LStick(track, spec.Label)
	case "rstick":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		if spec.Classical {
			return c.RStickClassical(track, spec.Label)
		}
		return c.RStick(track, spec.Label)
	case "wires":
		track, err := need(spec, "track", spec.Track)
		if err != nil {
			return 0, err
		}
		return c.Wires(track)
	case "":
		return 0, errors.New(errors.ErrCodeInvalidManifest, "gate is missing a kind")
	default:
		return 0, errors.New(errors.ErrCodeInvalidManifest, "unknown gate kind %q", spec.Kind)
	}
}

// need unwraps a required integer field, failing with INVALID_MANIFEST when
// the manifest leaves it unset.
func need(spec *gateSpec, field string, v *int) (int, error) {
	if v == nil {
		return 0, errors.New(errors.ErrCodeInvalidManifest, "gate kind %q requires field %q", spec.Kind, field)
	}
	return *v, nil
}
