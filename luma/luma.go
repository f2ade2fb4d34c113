// Package luma measures the mean perceived brightness of pixel data.
package luma

import (
	"errors"
	"image"
	"image/color"
)

// Weights from https://www.w3.org/TR/AERT/#color-contrast
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

var ErrEmpty = errors.New("no samples")

// RGB is a color sample with channels in the 0..1 range.
type RGB struct {
	R, G, B float64
}

func (c RGB) Luma() float64 {
	return WeightR*c.R + WeightG*c.G + WeightB*c.B
}

// Mean averages samples and returns the luma of the average.
func Mean(samples []RGB) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmpty
	}

	var sum RGB
	for _, s := range samples {
		sum.R += s.R
		sum.G += s.G
		sum.B += s.B
	}
	n := float64(len(samples))
	return RGB{R: sum.R / n, G: sum.G / n, B: sum.B / n}.Luma(), nil
}

// Image returns the mean luma of every pixel in img, using straight (not
// premultiplied) color values.
func Image(img image.Image) (float64, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, ErrEmpty
	}

	samples := make([]RGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			samples = append(samples, RGB{
				R: float64(c.R) / 0xFFFF,
				G: float64(c.G) / 0xFFFF,
				B: float64(c.B) / 0xFFFF,
			})
		}
	}
	return Mean(samples)
}
