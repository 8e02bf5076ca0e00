// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.
//
// Purpose:
//   • Small, exactly representable fixtures whose determinants and inverses
//     are known in closed form.
//   • Helpers that fail fast with t.Helper() so failures point at the caller.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// m2 is [[1,2],[3,4]] in row-major reading order.
func m2() matrix.Mat2d {
	return matrix.FromRows2(vector.Vec2d{1, 2}, vector.Vec2d{3, 4})
}

// tridiag3 is the 3×3 second-difference matrix; det = 4.
func tridiag3() matrix.Mat3d {
	return matrix.FromRows3(
		vector.Vec3d{2, -1, 0},
		vector.Vec3d{-1, 2, -1},
		vector.Vec3d{0, -1, 2},
	)
}

// textbook4 is a 4×4 fixture with det = 30.
func textbook4() matrix.Mat4d {
	return matrix.FromRows4(
		vector.Vec4d{1, 0, 2, -1},
		vector.Vec4d{3, 0, 0, 5},
		vector.Vec4d{2, 1, 4, -3},
		vector.Vec4d{1, 0, 5, 0},
	)
}

// MustAt2 reads a cell or fails the test.
func MustAt2(t *testing.T, m matrix.Mat2d, r, c int) float64 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

// Setter4 chains checked Set calls on a Mat4d; any failure stops the test.
type Setter4 struct {
	t *testing.T
	m *matrix.Mat4d
}

// MustSet4 starts a Set chain on m.
func MustSet4(t *testing.T, m *matrix.Mat4d) Setter4 { return Setter4{t: t, m: m} }

// Set stores v at (row, col) and returns the chain.
func (s Setter4) Set(row, col int, v float64) Setter4 {
	s.t.Helper()
	require.NoError(s.t, s.m.Set(row, col, v))

	return s
}

// RequireRows4 compares m with want given row by row, within eps.
func RequireRows4(t *testing.T, want [4][4]float64, m matrix.Mat4d, eps float64) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			got, err := m.At(r, c)
			require.NoError(t, err)
			require.InDelta(t, want[r][c], got, eps, "cell (%d,%d)", r, c)
		}
	}
}
