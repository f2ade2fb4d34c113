package matrix

import "sync"

// hueGreenRotation tilts the luma axis onto blue after the 45 degree red
// rotation.
const hueGreenRotation = 39.182655

type hueBasis struct {
	pre  Matrix
	post Matrix
}

// basis depends only on package constants, so it is computed once per
// process and shared read-only by every Builder.
var basis = sync.OnceValue(func() hueBasis {
	pre := NewBuilder().
		RotateRed(45).
		RotateGreen(-hueGreenRotation)

	lum := pre.TransformVector(Vector{HaeberliR, HaeberliG, HaeberliB, 1})
	redRef := lum[0] / lum[2]
	greenRef := lum[1] / lum[2]

	pre.ShearBlue(redRef, greenRef)

	post := NewBuilder().
		ShearBlue(-redRef, -greenRef).
		RotateGreen(hueGreenRotation).
		RotateRed(-45)

	return hueBasis{pre: pre.Matrix(), post: post.Matrix()}
})

// RotateHue rotates hue around the luma axis while approximately keeping
// luminance.
func (b *Builder) RotateHue(degrees float64) *Builder {
	hb := basis()
	return b.Concat(hb.pre).
		RotateBlue(degrees).
		Concat(hb.post)
}
