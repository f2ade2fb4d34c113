package probe

import (
	"fmt"
	"io"

	"colorfilter/matrix"

	"github.com/alecthomas/kong"
)

type PresetsCmd struct{}

func (c *PresetsCmd) Run(kctx *kong.Context) error {
	return listPresets(kctx.Stdout)
}

func listPresets(w io.Writer) error {
	for _, d := range matrix.Deficiencies() {
		m, err := d.Matrix()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", d, m); err != nil {
			return err
		}
	}
	return nil
}
