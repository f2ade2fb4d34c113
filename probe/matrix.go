package probe

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"colorfilter/matrix"
	"colorfilter/pipeline"

	"github.com/alecthomas/kong"
)

type MatrixCmd struct {
	Op      []string `arg:"" help:"Operations to compose, in order, as name[:arg,...]" sep:"none"`
	Float32 bool     `help:"Print coefficients at shader uniform (float32) precision"`
	Flat    bool     `help:"Print all 20 coefficients on one comma-separated line"`
}

func (c *MatrixCmd) Run(kctx *kong.Context) error {
	p, err := pipeline.Parse(c.Op)
	if err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}
	m, err := p.Build()
	if err != nil {
		return fmt.Errorf("could not build matrix: %w", err)
	}
	return c.write(kctx.Stdout, m)
}

func (c *MatrixCmd) write(w io.Writer, m matrix.Matrix) error {
	bits := 64
	if c.Float32 {
		bits = 32
	}

	sep, rowSep := "\t", "\n"
	if c.Flat {
		sep, rowSep = ",", ","
	}

	values := [20]float64(m)
	if bits == 32 {
		for i, f := range m.Float32s() {
			values[i] = float64(f)
		}
	}

	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			if i%5 == 0 {
				sb.WriteString(rowSep)
			} else {
				sb.WriteString(sep)
			}
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
