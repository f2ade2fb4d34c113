package matrix

import (
	"fmt"
	"strings"
)

// Deficiency names a color-vision deficiency with a built-in simulation
// matrix.
type Deficiency int

const (
	Protanopia Deficiency = iota
	Protanomaly
	Deuteranopia
	Deuteranomaly
	Tritanopia
	Tritanomaly
	Achromatopsia
	Achromatomaly
)

var deficiencyNames = [...]string{
	Protanopia:    "Protanopia",
	Protanomaly:   "Protanomaly",
	Deuteranopia:  "Deuteranopia",
	Deuteranomaly: "Deuteranomaly",
	Tritanopia:    "Tritanopia",
	Tritanomaly:   "Tritanomaly",
	Achromatopsia: "Achromatopsia",
	Achromatomaly: "Achromatomaly",
}

// Coefficients from the nofunc.com Color Matrix Library.
var deficiencyMatrices = [...]Matrix{
	Protanopia: {
		0.567, 0.433, 0, 0, 0,
		0.558, 0.442, 0, 0, 0,
		0, 0.242, 0.758, 0, 0,
		0, 0, 0, 1, 0,
	},
	Protanomaly: {
		0.817, 0.183, 0, 0, 0,
		0.333, 0.667, 0, 0, 0,
		0, 0.125, 0.875, 0, 0,
		0, 0, 0, 1, 0,
	},
	Deuteranopia: {
		0.625, 0.375, 0, 0, 0,
		0.7, 0.3, 0, 0, 0,
		0, 0.3, 0.7, 0, 0,
		0, 0, 0, 1, 0,
	},
	Deuteranomaly: {
		0.8, 0.2, 0, 0, 0,
		0.258, 0.742, 0, 0, 0,
		0, 0.142, 0.858, 0, 0,
		0, 0, 0, 1, 0,
	},
	Tritanopia: {
		0.95, 0.05, 0, 0, 0,
		0, 0.433, 0.567, 0, 0,
		0, 0.475, 0.525, 0, 0,
		0, 0, 0, 1, 0,
	},
	Tritanomaly: {
		0.967, 0.033, 0, 0, 0,
		0, 0.733, 0.267, 0, 0,
		0, 0.183, 0.817, 0, 0,
		0, 0, 0, 1, 0,
	},
	Achromatopsia: {
		0.299, 0.587, 0.114, 0, 0,
		0.299, 0.587, 0.114, 0, 0,
		0.299, 0.587, 0.114, 0, 0,
		0, 0, 0, 1, 0,
	},
	Achromatomaly: {
		0.618, 0.320, 0.062, 0, 0,
		0.163, 0.775, 0.062, 0, 0,
		0.163, 0.320, 0.516, 0, 0,
		0, 0, 0, 1, 0,
	},
}

// Deficiencies returns every known deficiency in declaration order.
func Deficiencies() []Deficiency {
	all := make([]Deficiency, len(deficiencyNames))
	for i := range all {
		all[i] = Deficiency(i)
	}
	return all
}

func (d Deficiency) valid() bool {
	return d >= 0 && int(d) < len(deficiencyNames)
}

func (d Deficiency) String() string {
	if !d.valid() {
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
	return deficiencyNames[d]
}

// Matrix returns the simulation matrix for d.
func (d Deficiency) Matrix() (Matrix, error) {
	if !d.valid() {
		return Matrix{}, fmt.Errorf("deficiency %d: %w", int(d), ErrUnknownPreset)
	}
	return deficiencyMatrices[d], nil
}

// ParseDeficiency looks a deficiency up by name, ignoring case.
func ParseDeficiency(name string) (Deficiency, error) {
	for i, n := range deficiencyNames {
		if strings.EqualFold(n, name) {
			return Deficiency(i), nil
		}
	}
	return 0, fmt.Errorf("deficiency %q: %w", name, ErrUnknownPreset)
}

// ApplyColorDeficiency composes the simulation matrix for d. A value outside
// the known set records ErrUnknownPreset and leaves the matrix unchanged.
func (b *Builder) ApplyColorDeficiency(d Deficiency) *Builder {
	m, err := d.Matrix()
	if err != nil {
		return b.fail(err)
	}
	return b.Concat(m)
}
