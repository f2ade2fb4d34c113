// Package render evaluates a color matrix over image pixels on the CPU.
//
// Pixels are taken in straight (non-premultiplied) alpha and normalized to
// 0..1 before the matrix is applied; every output channel is clamped back to
// 0..1, which is what Threshold relies on to produce a binary result.
package render

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"colorfilter/matrix"
	"colorfilter/parallel"

	"golang.org/x/image/draw"
)

// Apply returns a copy of src with m applied to every pixel. Rows are split
// into bands processed concurrently; bands < 1 uses GOMAXPROCS.
func Apply(logger *slog.Logger, m matrix.Matrix, src image.Image, bands int) *image.NRGBA64 {
	sb := src.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)

	if m.IsIdentity() {
		logger.Debug("identity matrix, copying pixels")
		return dst
	}

	logger.Debug("applying color matrix", "width", sb.Dx(), "height", sb.Dy())
	parallel.Rows(sb.Dy(), bands, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+sb.Dx()*8]
			for i := 0; i < len(row); i += 8 {
				v := matrix.Vector{
					float64(uint16(row[i+0])<<8|uint16(row[i+1])) / 0xFFFF,
					float64(uint16(row[i+2])<<8|uint16(row[i+3])) / 0xFFFF,
					float64(uint16(row[i+4])<<8|uint16(row[i+5])) / 0xFFFF,
					float64(uint16(row[i+6])<<8|uint16(row[i+7])) / 0xFFFF,
				}
				v = m.Transform(v)
				for c := range 4 {
					u := toUint16(v[c])
					row[i+c*2] = uint8(u >> 8)
					row[i+c*2+1] = uint8(u)
				}
			}
		}
	})

	return dst
}

// Pixel applies m to a single color.
func Pixel(m matrix.Matrix, c color.Color) color.NRGBA64 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	v := m.Transform(matrix.Vector{
		float64(n.R) / 0xFFFF,
		float64(n.G) / 0xFFFF,
		float64(n.B) / 0xFFFF,
		float64(n.A) / 0xFFFF,
	})
	return color.NRGBA64{
		R: toUint16(v[0]),
		G: toUint16(v[1]),
		B: toUint16(v[2]),
		A: toUint16(v[3]),
	}
}

func toUint16(v float64) uint16 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 0xFFFF
	}
	return uint16(v*0xFFFF + 0.5)
}
