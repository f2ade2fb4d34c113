package matrix

import (
	"math"
	"testing"
)

// Test helper functions shared across matrix tests.

const tolerance = 1e-9

// assertMatrix fails the test if any coefficient differs from want by more
// than tol.
func assertMatrix(t *testing.T, got, want Matrix, tol float64) {
	t.Helper()
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("Matrix[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func assertVector(t *testing.T, got, want Vector, tol float64) {
	t.Helper()
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("Vector[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
