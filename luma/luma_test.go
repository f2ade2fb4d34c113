package luma

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name    string
		samples []RGB
		want    float64
	}{
		{"black", []RGB{{0, 0, 0}}, 0},
		{"white", []RGB{{1, 1, 1}, {1, 1, 1}}, 1},
		{"red", []RGB{{1, 0, 0}}, 0.299},
		{"mixed", []RGB{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, 0.25},
		{"green_half", []RGB{{0, 1, 0}, {0, 0, 0}}, 0.2935},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.samples)
			if err != nil {
				t.Fatalf("Mean: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Mean = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Mean(nil) error = %v, want ErrEmpty", err)
	}
}

func TestImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	got, err := Image(img)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	want := (0.299 + 0.114) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Image = %v, want %v", got, want)
	}

	if _, err := Image(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, ErrEmpty) {
		t.Errorf("Image(empty) error = %v, want ErrEmpty", err)
	}
}
