// Package materials is a small library of unidirectional ply systems with
// elastic constants and strengths in MPa.
package materials

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexiusacademia/laminate/internal/failure"
	"github.com/alexiusacademia/laminate/internal/ply"
)

// ErrUnknownMaterial is returned by Lookup for a name not in the library
var ErrUnknownMaterial = errors.New("unknown material")

// Preset is a named ply system
type Preset struct {
	Name        string
	Description string
	Elastic     ply.Material
	Strengths   failure.Strengths
	Thickness   float64 // Nominal cured ply thickness (mm)
}

var presets = map[string]Preset{
	"carbon-epoxy": {
		Name:        "carbon-epoxy",
		Description: "Generic carbon/epoxy prepreg (MPa)",
		Elastic:     ply.Material{E1: 125000, E2: 9800, Nu12: 0.24, G12: 5500},
		Strengths: failure.Strengths{
			LongTension:      900,
			LongCompression:  800,
			TransTension:     55,
			TransCompression: 170,
			Shear:            90,
		},
		Thickness: 0.125,
	},
	"as4-3501-6": {
		Name:        "as4-3501-6",
		Description: "AS4/3501-6 carbon/epoxy (MPa)",
		Elastic:     ply.Material{E1: 138000, E2: 8960, Nu12: 0.3, G12: 7100},
		Strengths: failure.Strengths{
			LongTension:      1447,
			LongCompression:  1447,
			TransTension:     51.7,
			TransCompression: 206,
			Shear:            93,
		},
		Thickness: 0.127,
	},
	"t300-5208": {
		Name:        "t300-5208",
		Description: "T300/5208 carbon/epoxy (MPa)",
		Elastic:     ply.Material{E1: 181000, E2: 10300, Nu12: 0.28, G12: 7170},
		Strengths: failure.Strengths{
			LongTension:      1500,
			LongCompression:  1500,
			TransTension:     40,
			TransCompression: 246,
			Shear:            68,
		},
		Thickness: 0.125,
	},
	"demo-gpa": {
		Name:        "demo-gpa",
		Description: "Carbon/epoxy elastic constants in GPa, strengths in MPa",
		Elastic:     ply.Material{E1: 131, E2: 9, Nu12: 0.22, G12: 6},
		Strengths: failure.Strengths{
			LongTension:      900,
			LongCompression:  800,
			TransTension:     55,
			TransCompression: 170,
			Shear:            90,
		},
		Thickness: 0.125,
	},
}

// Lookup returns the preset with the given name
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownMaterial, name, Names())
	}
	return p, nil
}

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
