package matrix

import "math"

const (
	red = iota
	green
	blue
)

// RotateRed rotates the blue/green plane, holding red fixed.
func (b *Builder) RotateRed(degrees float64) *Builder {
	return b.rotateColor(degrees, blue, green)
}

// RotateGreen rotates the red/blue plane, holding green fixed.
func (b *Builder) RotateGreen(degrees float64) *Builder {
	return b.rotateColor(degrees, red, blue)
}

// RotateBlue rotates the green/red plane, holding blue fixed.
func (b *Builder) RotateBlue(degrees float64) *Builder {
	return b.rotateColor(degrees, green, red)
}

func (b *Builder) rotateColor(degrees float64, x, y int) *Builder {
	sin, cos := math.Sincos(degrees * math.Pi / 180)

	m := Identity
	m[x*5+x] = cos
	m[y*5+y] = cos
	m[x*5+y] = sin
	m[y*5+x] = -sin
	return b.Concat(m)
}

// ShearRed adds scaled green and blue into the red output.
func (b *Builder) ShearRed(g, bl float64) *Builder {
	return b.shearColor(red, green, g, blue, bl)
}

// ShearGreen adds scaled red and blue into the green output.
func (b *Builder) ShearGreen(r, bl float64) *Builder {
	return b.shearColor(green, red, r, blue, bl)
}

// ShearBlue adds scaled red and green into the blue output.
func (b *Builder) ShearBlue(r, g float64) *Builder {
	return b.shearColor(blue, red, r, green, g)
}

func (b *Builder) shearColor(x, y1 int, d1 float64, y2 int, d2 float64) *Builder {
	m := Identity
	m[x*5+y1] = d1
	m[x*5+y2] = d2
	return b.Concat(m)
}
