// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Mat3 is a 3×3 matrix of float kind T tagged with coordinate space A.
// Cells are stored column-major: m[col*3+row]. The zero value is the zero
// matrix; Identity3 returns the identity.
type Mat3[T scalar.Float, A any] [9]T

const name3 = "Mat3"

// Identity3 returns the 3×3 identity matrix.
func Identity3[T scalar.Float, A any]() Mat3[T, A] {
	var m Mat3[T, A]
	setIdentity(m[:], 3)

	return m
}

// Diagonal3 returns the matrix with d on the diagonal and 0 elsewhere.
func Diagonal3[T scalar.Float, A any](d vector.Vec3[T, A]) Mat3[T, A] {
	var m Mat3[T, A]
	for i := range d {
		m[i*3+i] = d[i]
	}

	return m
}

// FromRows3 builds a matrix from its rows, top to bottom.
func FromRows3[T scalar.Float, A any](r0, r1, r2 vector.Vec3[T, A]) Mat3[T, A] {
	var m Mat3[T, A]
	for r, row := range [3]vector.Vec3[T, A]{r0, r1, r2} {
		for col := range row {
			m[col*3+r] = row[col]
		}
	}

	return m
}

// At returns cell (row, col) or ErrOutOfRange.
func (m Mat3[T, A]) At(row, col int) (T, error) {
	if !validIndices(3, row, col) {
		return 0, indexErrorf(name3, ctxAt, row, col)
	}

	return m[col*3+row], nil
}

// Set stores v at (row, col). Nothing is written on ErrOutOfRange.
func (m *Mat3[T, A]) Set(row, col int, v T) error {
	if !validIndices(3, row, col) {
		return indexErrorf(name3, ctxSet, row, col)
	}
	m[col*3+row] = v

	return nil
}

// CopyFrom overwrites every cell of m with src.
func (m *Mat3[T, A]) CopyFrom(src Mat3[T, A]) { *m = src }

// SetZero writes 0 into every cell, diagonal included.
func (m *Mat3[T, A]) SetZero() { *m = Mat3[T, A]{} }

// SetIdentity resets m to the identity.
func (m *Mat3[T, A]) SetIdentity() { setIdentity(m[:], 3) }

// Row returns row i.
func (m Mat3[T, A]) Row(i int) (vector.Vec3[T, A], error) {
	var v vector.Vec3[T, A]
	if !validIndices(3, i) {
		return v, indexErrorf(name3, ctxRow, i)
	}
	for col := range v {
		v[col] = m[col*3+i]
	}

	return v, nil
}

// Column returns column j.
func (m Mat3[T, A]) Column(j int) (vector.Vec3[T, A], error) {
	var v vector.Vec3[T, A]
	if !validIndices(3, j) {
		return v, indexErrorf(name3, ctxColumn, j)
	}
	copy(v[:], m[j*3:(j+1)*3])

	return v, nil
}

// Rows returns all rows, top to bottom.
func (m Mat3[T, A]) Rows() [3]vector.Vec3[T, A] {
	var rows [3]vector.Vec3[T, A]
	for r := range rows {
		for col := range rows[r] {
			rows[r][col] = m[col*3+r]
		}
	}

	return rows
}

// ExchangeRows returns a copy of m with rows a and b swapped.
func (m Mat3[T, A]) ExchangeRows(a, b int) (Mat3[T, A], error) {
	if err := m.ExchangeRowsInPlace(a, b); err != nil {
		return Mat3[T, A]{}, err
	}

	return m, nil
}

// ExchangeRowsInPlace swaps rows a and b of m.
func (m *Mat3[T, A]) ExchangeRowsInPlace(a, b int) error {
	if !validIndices(3, a, b) {
		return indexErrorf(name3, ctxExchangeRows, a, b)
	}
	exchangeRows(m[:], 3, a, b)

	return nil
}

// ScaleRow returns a copy of m with row r multiplied by k.
func (m Mat3[T, A]) ScaleRow(r int, k T) (Mat3[T, A], error) {
	if err := m.ScaleRowInPlace(r, k); err != nil {
		return Mat3[T, A]{}, err
	}

	return m, nil
}

// ScaleRowInPlace multiplies row r of m by k.
func (m *Mat3[T, A]) ScaleRowInPlace(r int, k T) error {
	if !validIndices(3, r) {
		return indexErrorf(name3, ctxScaleRow, r)
	}
	scaleRow(m[:], 3, r, k)

	return nil
}

// AddRowScaled returns a copy of m whose row c is row[a] + k*row[b].
func (m Mat3[T, A]) AddRowScaled(a, b, c int, k T) (Mat3[T, A], error) {
	if err := m.AddRowScaledInPlace(a, b, c, k); err != nil {
		return Mat3[T, A]{}, err
	}

	return m, nil
}

// AddRowScaledInPlace sets row c of m to row[a] + k*row[b].
// All three indices are checked before anything is written.
func (m *Mat3[T, A]) AddRowScaledInPlace(a, b, c int, k T) error {
	if !validIndices(3, a, b, c) {
		return indexErrorf(name3, ctxAddRowScaled, a, b, c)
	}
	addRowScaled(m[:], 3, a, b, c, k)

	return nil
}

// Determinant returns det(m).
func (m Mat3[T, A]) Determinant() T { return determinant(m[:], 3) }

// Trace returns the sum of the diagonal.
func (m Mat3[T, A]) Trace() T { return trace(m[:], 3) }

// Transpose returns mᵀ.
func (m Mat3[T, A]) Transpose() Mat3[T, A] {
	transpose(m[:], 3)

	return m
}

// TransposeInPlace replaces m with mᵀ.
func (m *Mat3[T, A]) TransposeInPlace() { transpose(m[:], 3) }

// Invert returns m⁻¹, or false when m is singular under the configured eps.
func (m Mat3[T, A]) Invert(opts ...Option) (Mat3[T, A], bool) {
	if !m.InvertInPlace(opts...) {
		return Mat3[T, A]{}, false
	}

	return m, true
}

// InvertInPlace replaces m with m⁻¹ and reports success.
// m is left untouched when it is singular.
func (m *Mat3[T, A]) InvertInPlace(opts ...Option) bool {
	return invert(m[:], 3, epsilonFor[T](opts))
}

// Multiply returns m×o.
func (m Mat3[T, A]) Multiply(o Mat3[T, A]) Mat3[T, A] {
	var out Mat3[T, A]
	multiply(out[:], m[:], o[:], 3)

	return out
}

// MultiplyInPlace sets m = m×o.
func (m *Mat3[T, A]) MultiplyInPlace(o Mat3[T, A]) {
	*m = m.Multiply(o)
}

// MulVec returns m×v.
func (m Mat3[T, A]) MulVec(v vector.Vec3[T, A]) vector.Vec3[T, A] {
	var out vector.Vec3[T, A]
	mulVec(out[:], m[:], v[:], 3)

	return out
}

// Add returns m + o.
func (m Mat3[T, A]) Add(o Mat3[T, A]) Mat3[T, A] {
	for k := range m {
		m[k] += o[k]
	}

	return m
}

// Sub returns m - o.
func (m Mat3[T, A]) Sub(o Mat3[T, A]) Mat3[T, A] {
	for k := range m {
		m[k] -= o[k]
	}

	return m
}

// Scale returns k·m.
func (m Mat3[T, A]) Scale(k T) Mat3[T, A] {
	for i := range m {
		m[i] *= k
	}

	return m
}

// EqualApprox reports whether every cell of m is within eps of o.
func (m Mat3[T, A]) EqualApprox(o Mat3[T, A], opts ...Option) bool {
	return equalApprox(m[:], o[:], epsilonFor[T](opts))
}

// Buffer returns the zero-copy linear view of m's cells.
func (m *Mat3[T, A]) Buffer() *Buffer[T] { return newBuffer(m[:], 3) }

// String renders m as "[Mat3 c00 c01 ... ]" in row-major reading order.
func (m Mat3[T, A]) String() string { return format(name3, m[:], 3) }
