// Package matrix builds and composes affine 4x5 color matrices.
//
// A Matrix maps an RGBA input to an RGBA output:
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G'] = [m10 m11 m12 m13 m14] * [G]
//	[B']   [m20 m21 m22 m23 m24]   [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	                               [1]
//
// Channels are in the 0..1 working range. The fifth column holds offsets.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// Matrix is a row-major 4x5 color matrix.
// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
type Matrix [20]float64

// Vector is an R, G, B, A value.
type Vector [4]float64

var Identity = Matrix{
	1, 0, 0, 0, 0, // R
	0, 1, 0, 0, 0, // G
	0, 0, 1, 0, 0, // B
	0, 0, 0, 1, 0, // A
}

// Concat returns t applied after m: a pixel passes through m first, then t.
// Offsets compose through the linear part of t.
func (m Matrix) Concat(t Matrix) Matrix {
	var r Matrix
	for i := 0; i < 20; i += 5 {
		for x := 0; x < 5; x++ {
			r[i+x] = t[i]*m[x] +
				t[i+1]*m[x+5] +
				t[i+2]*m[x+10] +
				t[i+3]*m[x+15]
			if x == 4 {
				r[i+x] += t[i+4]
			}
		}
	}
	return r
}

// Transform applies m to v.
func (m Matrix) Transform(v Vector) Vector {
	var out Vector
	for row := range 4 {
		i := row * 5
		out[row] = v[0]*m[i] + v[1]*m[i+1] + v[2]*m[i+2] + v[3]*m[i+3] + m[i+4]
	}
	return out
}

// TransformSlice applies m to values in place. values must hold exactly
// R, G, B and A; any other length is rejected and values is left untouched.
func (m Matrix) TransformSlice(values []float64) error {
	if len(values) != 4 {
		return fmt.Errorf("vector must have 4 components, got %d: %w", len(values), ErrInvalidArgument)
	}

	out := m.Transform(Vector(values))
	copy(values, out[:])
	return nil
}

// Float32s returns the coefficients at shader uniform precision.
func (m Matrix) Float32s() [20]float32 {
	var f [20]float32
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}

func (m Matrix) Rows() [4][5]float64 {
	var rows [4][5]float64
	for i := range rows {
		copy(rows[i][:], m[i*5:i*5+5])
	}
	return rows
}

// ApproxEqual reports whether every coefficient of m is within tol of o.
func (m Matrix) ApproxEqual(o Matrix, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

func (m Matrix) IsIdentity() bool {
	return m == Identity
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return sb.String()
}
