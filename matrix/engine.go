// SPDX-License-Identifier: MIT

// Package matrix - size-independent algebra engine.
//
// Purpose:
//   - Implement every algorithm once, over a column-major cell slice c of
//     length n*n (offset = col*n + row), so Mat2, Mat3 and Mat4 only delegate.
//   - Keep the three Gauss-Jordan row primitives (exchange, scale, add-scaled)
//     as the single mutation path used by inversion.
//
// Contract:
//   - Functions here never validate indices; the typed wrappers do that
//     before calling in, so a failed call never performs a partial write.
//   - Nothing here allocates on the heap: scratch space is fixed-size arrays.
//
// Complexity quicksheet:
//   - row primitives O(n); determinant O(1) for fixed n; invert O(n³); multiply O(n³).
package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Scratch array bounds: the largest supported order is 4.
const (
	maxOrder = 4
	maxCells = maxOrder * maxOrder
)

// validIndices reports whether every index lies in [0, n).
func validIndices(n int, idx ...int) bool {
	for _, i := range idx {
		if i < 0 || i >= n {
			return false
		}
	}

	return true
}

// setIdentity writes 1 on the diagonal and 0 elsewhere.
func setIdentity[T scalar.Float](c []T, n int) {
	for k := range c {
		c[k] = 0
	}
	for i := 0; i < n; i++ {
		c[i*n+i] = 1
	}
}

// exchangeRows swaps rows a and b in place.
func exchangeRows[T scalar.Float](c []T, n, a, b int) {
	if a == b {
		return
	}
	for col := 0; col < n; col++ {
		c[col*n+a], c[col*n+b] = c[col*n+b], c[col*n+a]
	}
}

// scaleRow multiplies every cell of row r by k.
func scaleRow[T scalar.Float](c []T, n, r int, k T) {
	for col := 0; col < n; col++ {
		c[col*n+r] *= k
	}
}

// addRowScaled writes row[a] + k*row[b] into row dst.
// Each column reads both sources before writing, so dst may alias a or b.
func addRowScaled[T scalar.Float](c []T, n, a, b, dst int, k T) {
	for col := 0; col < n; col++ {
		c[col*n+dst] = c[col*n+a] + k*c[col*n+b]
	}
}

// det3 evaluates a 3×3 determinant given in row-major reading order by
// cofactor expansion along the first row.
func det3[T scalar.Float](a00, a01, a02, a10, a11, a12, a20, a21, a22 T) T {
	return a00*(a11*a22-a12*a21) -
		a01*(a10*a22-a12*a20) +
		a02*(a10*a21-a11*a20)
}

// determinant computes det(c) by direct expansion.
// Implementation:
//   - n=2: ad - bc.
//   - n=3: cofactor expansion along row 0.
//   - n=4: Laplace expansion along row 0 over four 3×3 minors.
//
// Behavior highlights:
//   - Exact for identity and diagonal inputs (products of exact values).
//   - Negating a row negates every term, hence the result.
//
// Complexity:
//   - Time O(1) for the fixed orders, Space O(1).
func determinant[T scalar.Float](c []T, n int) T {
	at := func(r, col int) T { return c[col*n+r] }

	switch n {
	case 2:
		return at(0, 0)*at(1, 1) - at(0, 1)*at(1, 0)
	case 3:
		return det3(
			at(0, 0), at(0, 1), at(0, 2),
			at(1, 0), at(1, 1), at(1, 2),
			at(2, 0), at(2, 1), at(2, 2),
		)
	case 4:
		var det T
		sign := T(1)
		for j := 0; j < 4; j++ {
			// Columns of the minor: the three columns other than j.
			var cols [3]int
			k := 0
			for col := 0; col < 4; col++ {
				if col != j {
					cols[k] = col
					k++
				}
			}
			minor := det3(
				at(1, cols[0]), at(1, cols[1]), at(1, cols[2]),
				at(2, cols[0]), at(2, cols[1]), at(2, cols[2]),
				at(3, cols[0]), at(3, cols[1]), at(3, cols[2]),
			)
			det += sign * at(0, j) * minor
			sign = -sign
		}

		return det
	}

	return 0
}

// trace sums the diagonal.
func trace[T scalar.Float](c []T, n int) T {
	var s T
	for i := 0; i < n; i++ {
		s += c[i*n+i]
	}

	return s
}

// transpose swaps cell(i,j) and cell(j,i) for all i<j in place.
func transpose[T scalar.Float](c []T, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c[j*n+i], c[i*n+j] = c[i*n+j], c[j*n+i]
		}
	}
}

// multiply writes a×b into out. out must not alias a or b.
func multiply[T scalar.Float](out, a, b []T, n int) {
	for col := 0; col < n; col++ {
		for r := 0; r < n; r++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[k*n+r] * b[col*n+k]
			}
			out[col*n+r] = sum
		}
	}
}

// mulVec writes m×v into out. out must not alias v.
func mulVec[T scalar.Float](out, m, v []T, n int) {
	for r := 0; r < n; r++ {
		var sum T
		for col := 0; col < n; col++ {
			sum += m[col*n+r] * v[col]
		}
		out[r] = sum
	}
}

// rowScales writes max|cell| of every row of c into out and reports whether
// all of them are non-zero.
func rowScales[T scalar.Float](c []T, n int, out []float64) bool {
	for r := 0; r < n; r++ {
		var m float64
		for col := 0; col < n; col++ {
			if a := math.Abs(float64(c[col*n+r])); a > m {
				m = a
			}
		}
		if m == 0 {
			return false
		}
		out[r] = m
	}

	return true
}

// invert replaces c with its inverse and reports success.
// MAIN DESCRIPTION:
//   - Gauss-Jordan elimination on the augmented pair (work | inv), driven
//     exclusively by exchangeRows, scaleRow and addRowScaled.
//
// Implementation:
//   - Stage 1: record each row's scale max|cell|; a zero row is singular.
//   - Stage 2: copy c into work, set inv = I.
//   - Stage 3: for each column k pick, among rows k..n-1, the pivot that is
//     largest relative to its row's scale (scaled partial pivoting). The
//     matrix is singular when that ratio is <= eps. Otherwise exchange the
//     pivot into row k, scale row k to a unit pivot, then eliminate column k
//     from every other row with addRowScaled(i, k, i, -w[i,k]).
//   - Stage 4: on success copy inv back into c.
//
// Behavior highlights:
//   - c is untouched when the matrix is singular.
//   - The verdict depends on each row's own scale only, so scaling rows
//     (uniformly or not) never turns a regular matrix singular.
//   - NaN cells make the matrix singular.
//
// Complexity:
//   - Time O(n³), Space O(1) (fixed scratch arrays).
func invert[T scalar.Float](c []T, n int, eps float64) bool {
	var scaleBuf [maxOrder]float64
	scale := scaleBuf[:n]
	if !rowScales(c, n, scale) {
		return false
	}

	var workBuf, invBuf [maxCells]T
	work, inv := workBuf[:n*n], invBuf[:n*n]
	copy(work, c)
	setIdentity(inv, n)

	for k := 0; k < n; k++ {
		p, best := k, -1.0
		for i := k; i < n; i++ {
			if rel := math.Abs(float64(work[k*n+i])) / scale[i]; rel > best {
				p, best = i, rel
			}
		}
		pivot := work[k*n+p]
		if best <= eps || pivot == 0 {
			return false
		}

		exchangeRows(work, n, k, p)
		exchangeRows(inv, n, k, p)
		scale[k], scale[p] = scale[p], scale[k]

		scaleRow(work, n, k, 1/pivot)
		scaleRow(inv, n, k, 1/pivot)

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := work[k*n+i]
			if f == 0 {
				continue
			}
			addRowScaled(work, n, i, k, i, -f)
			addRowScaled(inv, n, i, k, i, -f)
		}
	}

	copy(c, inv)

	return true
}

// equalApprox reports |a[k]-b[k]| <= eps for every cell.
func equalApprox[T scalar.Float](a, b []T, eps float64) bool {
	for k := range a {
		if !scalar.NearlyEqual(a[k], b[k], eps) {
			return false
		}
	}

	return true
}

// format renders "[name c00 c01 ... ]" in row-major reading order.
func format[T scalar.Float](name string, c []T, n int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(name)
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			sb.WriteByte(' ')
			sb.WriteString(vector.FormatComponent(c[col*n+r]))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
