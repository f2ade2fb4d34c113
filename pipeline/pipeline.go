// Package pipeline parses ordered textual color operations and replays them
// on a matrix.Builder.
//
// Each step is written as name[:arg,arg,...], for example "brightness:40",
// "colorize:#ff8000,0.5" or "deficiency:protanopia".
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"colorfilter/matrix"
)

var ErrUnknownOp = errors.New("unknown operation")

type Step struct {
	Name       string
	Args       []float64
	Color      uint32
	Deficiency matrix.Deficiency
}

type Pipeline []Step

type argKind int

const (
	numbers argKind = iota
	colorArg
	deficiencyArg
)

type op struct {
	kind    argKind
	minArgs int
	maxArgs int
	apply   func(b *matrix.Builder, s Step) *matrix.Builder
}

var ops = map[string]op{
	"reset":  {minArgs: 0, maxArgs: 0, apply: func(b *matrix.Builder, _ Step) *matrix.Builder { return b.Reset() }},
	"invert": {minArgs: 0, maxArgs: 0, apply: func(b *matrix.Builder, _ Step) *matrix.Builder { return b.Invert() }},
	"contrast": {minArgs: 1, maxArgs: 3, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		r, g, bl := rgbArgs(s.Args)
		return b.AdjustContrastRGB(r, g, bl)
	}},
	"brightness": {minArgs: 1, maxArgs: 3, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		r, g, bl := rgbArgs(s.Args)
		return b.AdjustBrightnessRGB(r, g, bl)
	}},
	"saturation": {minArgs: 1, maxArgs: 3, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		if len(s.Args) == 1 {
			return b.AdjustSaturation(s.Args[0])
		}
		r, g, bl := rgbArgs(s.Args)
		return b.AdjustSaturationRGB(r, g, bl)
	}},
	"greyscale": {minArgs: 3, maxArgs: 3, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.ToGreyscale(s.Args[0], s.Args[1], s.Args[2])
	}},
	"luminance2alpha": {minArgs: 0, maxArgs: 0, apply: func(b *matrix.Builder, _ Step) *matrix.Builder {
		return b.Luminance2Alpha()
	}},
	"colorize": {kind: colorArg, minArgs: 0, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		amount := 1.0
		if len(s.Args) > 0 {
			amount = s.Args[0]
		}
		return b.Colorize(s.Color, amount)
	}},
	"average": {minArgs: 0, maxArgs: 3, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		if len(s.Args) == 0 {
			return b.Average()
		}
		r, g, bl := rgbArgs(s.Args)
		return b.AverageRGB(r, g, bl)
	}},
	"threshold": {minArgs: 1, maxArgs: 2, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		factor := matrix.DefaultThresholdFactor
		if len(s.Args) > 1 {
			factor = s.Args[1]
		}
		return b.Threshold(s.Args[0], factor)
	}},
	"desaturate": {minArgs: 0, maxArgs: 0, apply: func(b *matrix.Builder, _ Step) *matrix.Builder { return b.Desaturate() }},
	"alpha":      {minArgs: 1, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder { return b.SetAlpha(s.Args[0]) }},
	"hue":        {minArgs: 1, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder { return b.RotateHue(s.Args[0]) }},
	"rotate-red": {minArgs: 1, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.RotateRed(s.Args[0])
	}},
	"rotate-green": {minArgs: 1, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.RotateGreen(s.Args[0])
	}},
	"rotate-blue": {minArgs: 1, maxArgs: 1, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.RotateBlue(s.Args[0])
	}},
	"shear-red": {minArgs: 2, maxArgs: 2, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.ShearRed(s.Args[0], s.Args[1])
	}},
	"shear-green": {minArgs: 2, maxArgs: 2, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.ShearGreen(s.Args[0], s.Args[1])
	}},
	"shear-blue": {minArgs: 2, maxArgs: 2, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.ShearBlue(s.Args[0], s.Args[1])
	}},
	"deficiency": {kind: deficiencyArg, apply: func(b *matrix.Builder, s Step) *matrix.Builder {
		return b.ApplyColorDeficiency(s.Deficiency)
	}},
}

// Names lists the supported operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rgbArgs expands one value to all three channels; missing trailing values
// repeat the first one.
func rgbArgs(args []float64) (float64, float64, float64) {
	r := args[0]
	g, b := r, r
	if len(args) > 1 {
		g = args[1]
	}
	if len(args) > 2 {
		b = args[2]
	}
	return r, g, b
}

// Parse turns specs into a Pipeline, validating names and arguments.
func Parse(specs []string) (Pipeline, error) {
	p := make(Pipeline, 0, len(specs))
	for i, spec := range specs {
		step, err := ParseStep(spec)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		p = append(p, step)
	}
	return p, nil
}

func ParseStep(spec string) (Step, error) {
	name, rawArgs, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.ToLower(name)

	o, ok := ops[name]
	if !ok {
		return Step{}, fmt.Errorf("%q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownOp)
	}

	var args []string
	if rawArgs != "" {
		args = strings.Split(rawArgs, ",")
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}
	}

	step := Step{Name: name}
	switch o.kind {
	case colorArg:
		if len(args) == 0 {
			return Step{}, fmt.Errorf("%s: missing color", name)
		}
		c, err := ParseColor(args[0])
		if err != nil {
			return Step{}, fmt.Errorf("%s: %w", name, err)
		}
		step.Color = c
		args = args[1:]
	case deficiencyArg:
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s: expected one preset name, got %d arguments", name, len(args))
		}
		d, err := matrix.ParseDeficiency(args[0])
		if err != nil {
			return Step{}, fmt.Errorf("%s: %w", name, err)
		}
		step.Deficiency = d
		return step, nil
	}

	if len(args) < o.minArgs || len(args) > o.maxArgs {
		if o.minArgs == o.maxArgs {
			return Step{}, fmt.Errorf("%s: expected %d numeric arguments, got %d", name, o.minArgs, len(args))
		}
		return Step{}, fmt.Errorf("%s: expected %d to %d numeric arguments, got %d", name, o.minArgs, o.maxArgs, len(args))
	}
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return Step{}, fmt.Errorf("%s: invalid number %q: %w", name, a, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Step{}, fmt.Errorf("%s: non-finite number %q", name, a)
		}
		step.Args = append(step.Args, v)
	}

	return step, nil
}

// Apply replays every step on b in order.
func (p Pipeline) Apply(b *matrix.Builder) *matrix.Builder {
	for _, s := range p {
		b = ops[s.Name].apply(b, s)
	}
	return b
}

// Build replays the pipeline on a fresh builder.
func (p Pipeline) Build() (matrix.Matrix, error) {
	return p.Apply(matrix.NewBuilder()).Build()
}

func (s Step) String() string {
	var args []string
	switch ops[s.Name].kind {
	case colorArg:
		args = append(args, fmt.Sprintf("#%06x", s.Color))
	case deficiencyArg:
		args = append(args, s.Deficiency.String())
	}
	for _, a := range s.Args {
		args = append(args, strconv.FormatFloat(a, 'g', -1, 64))
	}
	if len(args) == 0 {
		return s.Name
	}
	return s.Name + ":" + strings.Join(args, ",")
}
