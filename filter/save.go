package filter

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// outputType resolves the requested format against the decoded one. Only
// webp has no encoder, so "unsup:" keeps every other source format.
func outputType(imgType, outType string) string {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if (unsupOnly && (imgType != "webp")) || (outType == "same") {
		return imgType
	}
	return outType
}

func save(img image.Image, imgType, outType, destDir, srcName string) (err error) {
	outType = outputType(imgType, outType)

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)

	outFile, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
			return
		}
		if rmErr := os.Remove(outFile.Name()); rmErr != nil && err == nil {
			err = fmt.Errorf("could not remove temporary destination %q: %w", destName, rmErr)
		}
	}()

	if err = encode(outFile, img, outType); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

func encode(w *os.File, img image.Image, outType string) error {
	switch outType {
	case "gif":
		return gif.Encode(w, img, nil)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %s", outType)
	}
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
