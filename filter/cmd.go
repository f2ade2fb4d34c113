package filter

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"colorfilter/matrix"
	"colorfilter/parallel"
	"colorfilter/pipeline"
	"colorfilter/render"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan   string        `help:"Source folder to scan" default:"."`
	Dest   string        `help:"Destination folder for filtered pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"filtered"`
	Op     []string      `help:"Operation to compose, in order, as name[:arg,...]. Repeat for more steps." short:"o" required:"" sep:"none"`
	Format string        `help:"Output format of filtered image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	Bands  int           `help:"Row bands processed concurrently per image, 0 for one per CPU" default:"1"`
	Matrix matrix.Matrix `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Bands < 0 {
		return fmt.Errorf("invalid band count: %d", c.Bands)
	}

	p, err := pipeline.Parse(c.Op)
	if err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}
	if c.Matrix, err = p.Build(); err != nil {
		return fmt.Errorf("could not build matrix: %w", err)
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, logger *slog.Logger) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	logger.Debug("color matrix", "ops", c.Op, "matrix", c.Matrix.Rows())

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				fileLog := logger.With("file", filepath.Join(c.Scan, fileName))
				if err := c.process(fileLog, fileName); err != nil {
					errCount.Add(1)
					fileLog.Error("could not filter image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string) error {
	imgFile, err := os.Open(filepath.Join(c.Scan, fileName))
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	logger.Info("filtering", "format", imgType, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	out := render.Apply(logger, c.Matrix, img, c.Bands)

	if err = save(out, imgType, c.Format, c.Dest, fileName); err != nil {
		return fmt.Errorf("could not save image in %q: %w", c.Dest, err)
	}
	return nil
}
