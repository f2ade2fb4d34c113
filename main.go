package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"colorfilter/filter"
	"colorfilter/parallel"
	"colorfilter/probe"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type cli struct {
	Workers int  `help:"Number of images processed concurrently, 0 for one per CPU" default:"0" env:"COLORFILTER_WORKERS"`
	Verbose bool `help:"Enable debug logging" short:"v"`

	Filter  filter.CLICmd    `cmd:"" help:"Apply a color matrix to every image in a folder"`
	Matrix  probe.MatrixCmd  `cmd:"" help:"Print the color matrix built from a list of operations"`
	Light   probe.LightCmd   `cmd:"" help:"Print the mean luma of images"`
	Presets probe.PresetsCmd `cmd:"" help:"List the color-vision deficiency presets"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("colorfilter"),
		kong.Description("Compose affine color matrices and apply them to images."),
		kong.UsageOnError(),
	)

	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	logger := slog.Default()
	logger.Debug("running", "command", kctx.Command(), "workers", c.Workers)

	pool := parallel.Start(c.Workers)
	defer pool.Close()

	kctx.FatalIfErrorf(kctx.Run(pool.Do, pool.Wait, logger))
}
