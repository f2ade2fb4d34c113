package probe

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"colorfilter/luma"

	"github.com/alecthomas/kong"
)

type LightCmd struct {
	Files []string `arg:"" help:"Images to measure" type:"existingfile"`
}

func (c *LightCmd) Run(kctx *kong.Context, logger *slog.Logger) error {
	return c.measure(kctx.Stdout, logger)
}

func (c *LightCmd) measure(w io.Writer, logger *slog.Logger) error {
	var errCount int
	for _, name := range c.Files {
		v, err := lightValue(logger, name)
		if err != nil {
			errCount++
			logger.Error("could not measure image", "file", name, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s\t%.6f\n", name, v)
	}

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

func lightValue(logger *slog.Logger, name string) (float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close image", "file", name, "error", closeErr)
		}
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("could not decode image: %w", err)
	}
	return luma.Image(img)
}
