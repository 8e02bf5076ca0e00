// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Mat2 is a 2×2 matrix of float kind T tagged with coordinate space A.
// Cells are stored column-major: m[col*2+row]. The zero value is the zero
// matrix; Identity2 returns the identity.
type Mat2[T scalar.Float, A any] [4]T

const name2 = "Mat2"

// Identity2 returns the 2×2 identity matrix.
func Identity2[T scalar.Float, A any]() Mat2[T, A] {
	var m Mat2[T, A]
	setIdentity(m[:], 2)

	return m
}

// Diagonal2 returns the matrix with d on the diagonal and 0 elsewhere.
func Diagonal2[T scalar.Float, A any](d vector.Vec2[T, A]) Mat2[T, A] {
	var m Mat2[T, A]
	for i := range d {
		m[i*2+i] = d[i]
	}

	return m
}

// FromRows2 builds a matrix from its rows, top to bottom.
func FromRows2[T scalar.Float, A any](r0, r1 vector.Vec2[T, A]) Mat2[T, A] {
	var m Mat2[T, A]
	for r, row := range [2]vector.Vec2[T, A]{r0, r1} {
		for col := range row {
			m[col*2+r] = row[col]
		}
	}

	return m
}

// At returns cell (row, col) or ErrOutOfRange.
func (m Mat2[T, A]) At(row, col int) (T, error) {
	if !validIndices(2, row, col) {
		return 0, indexErrorf(name2, ctxAt, row, col)
	}

	return m[col*2+row], nil
}

// Set stores v at (row, col). Nothing is written on ErrOutOfRange.
func (m *Mat2[T, A]) Set(row, col int, v T) error {
	if !validIndices(2, row, col) {
		return indexErrorf(name2, ctxSet, row, col)
	}
	m[col*2+row] = v

	return nil
}

// CopyFrom overwrites every cell of m with src.
func (m *Mat2[T, A]) CopyFrom(src Mat2[T, A]) { *m = src }

// SetZero writes 0 into every cell, diagonal included.
func (m *Mat2[T, A]) SetZero() { *m = Mat2[T, A]{} }

// SetIdentity resets m to the identity.
func (m *Mat2[T, A]) SetIdentity() { setIdentity(m[:], 2) }

// Row returns row i.
func (m Mat2[T, A]) Row(i int) (vector.Vec2[T, A], error) {
	var v vector.Vec2[T, A]
	if !validIndices(2, i) {
		return v, indexErrorf(name2, ctxRow, i)
	}
	for col := range v {
		v[col] = m[col*2+i]
	}

	return v, nil
}

// Column returns column j.
func (m Mat2[T, A]) Column(j int) (vector.Vec2[T, A], error) {
	var v vector.Vec2[T, A]
	if !validIndices(2, j) {
		return v, indexErrorf(name2, ctxColumn, j)
	}
	copy(v[:], m[j*2:(j+1)*2])

	return v, nil
}

// Rows returns all rows, top to bottom.
func (m Mat2[T, A]) Rows() [2]vector.Vec2[T, A] {
	var rows [2]vector.Vec2[T, A]
	for r := range rows {
		for col := range rows[r] {
			rows[r][col] = m[col*2+r]
		}
	}

	return rows
}

// ExchangeRows returns a copy of m with rows a and b swapped.
func (m Mat2[T, A]) ExchangeRows(a, b int) (Mat2[T, A], error) {
	if err := m.ExchangeRowsInPlace(a, b); err != nil {
		return Mat2[T, A]{}, err
	}

	return m, nil
}

// ExchangeRowsInPlace swaps rows a and b of m.
func (m *Mat2[T, A]) ExchangeRowsInPlace(a, b int) error {
	if !validIndices(2, a, b) {
		return indexErrorf(name2, ctxExchangeRows, a, b)
	}
	exchangeRows(m[:], 2, a, b)

	return nil
}

// ScaleRow returns a copy of m with row r multiplied by k.
func (m Mat2[T, A]) ScaleRow(r int, k T) (Mat2[T, A], error) {
	if err := m.ScaleRowInPlace(r, k); err != nil {
		return Mat2[T, A]{}, err
	}

	return m, nil
}

// ScaleRowInPlace multiplies row r of m by k.
func (m *Mat2[T, A]) ScaleRowInPlace(r int, k T) error {
	if !validIndices(2, r) {
		return indexErrorf(name2, ctxScaleRow, r)
	}
	scaleRow(m[:], 2, r, k)

	return nil
}

// AddRowScaled returns a copy of m whose row c is row[a] + k*row[b].
func (m Mat2[T, A]) AddRowScaled(a, b, c int, k T) (Mat2[T, A], error) {
	if err := m.AddRowScaledInPlace(a, b, c, k); err != nil {
		return Mat2[T, A]{}, err
	}

	return m, nil
}

// AddRowScaledInPlace sets row c of m to row[a] + k*row[b].
// All three indices are checked before anything is written.
func (m *Mat2[T, A]) AddRowScaledInPlace(a, b, c int, k T) error {
	if !validIndices(2, a, b, c) {
		return indexErrorf(name2, ctxAddRowScaled, a, b, c)
	}
	addRowScaled(m[:], 2, a, b, c, k)

	return nil
}

// Determinant returns det(m).
func (m Mat2[T, A]) Determinant() T { return determinant(m[:], 2) }

// Trace returns the sum of the diagonal.
func (m Mat2[T, A]) Trace() T { return trace(m[:], 2) }

// Transpose returns mᵀ.
func (m Mat2[T, A]) Transpose() Mat2[T, A] {
	transpose(m[:], 2)

	return m
}

// TransposeInPlace replaces m with mᵀ.
func (m *Mat2[T, A]) TransposeInPlace() { transpose(m[:], 2) }

// Invert returns m⁻¹, or false when m is singular under the configured eps.
func (m Mat2[T, A]) Invert(opts ...Option) (Mat2[T, A], bool) {
	if !m.InvertInPlace(opts...) {
		return Mat2[T, A]{}, false
	}

	return m, true
}

// InvertInPlace replaces m with m⁻¹ and reports success.
// m is left untouched when it is singular.
func (m *Mat2[T, A]) InvertInPlace(opts ...Option) bool {
	return invert(m[:], 2, epsilonFor[T](opts))
}

// Multiply returns m×o.
func (m Mat2[T, A]) Multiply(o Mat2[T, A]) Mat2[T, A] {
	var out Mat2[T, A]
	multiply(out[:], m[:], o[:], 2)

	return out
}

// MultiplyInPlace sets m = m×o.
func (m *Mat2[T, A]) MultiplyInPlace(o Mat2[T, A]) {
	*m = m.Multiply(o)
}

// MulVec returns m×v.
func (m Mat2[T, A]) MulVec(v vector.Vec2[T, A]) vector.Vec2[T, A] {
	var out vector.Vec2[T, A]
	mulVec(out[:], m[:], v[:], 2)

	return out
}

// Add returns m + o.
func (m Mat2[T, A]) Add(o Mat2[T, A]) Mat2[T, A] {
	for k := range m {
		m[k] += o[k]
	}

	return m
}

// Sub returns m - o.
func (m Mat2[T, A]) Sub(o Mat2[T, A]) Mat2[T, A] {
	for k := range m {
		m[k] -= o[k]
	}

	return m
}

// Scale returns k·m.
func (m Mat2[T, A]) Scale(k T) Mat2[T, A] {
	for i := range m {
		m[i] *= k
	}

	return m
}

// EqualApprox reports whether every cell of m is within eps of o.
func (m Mat2[T, A]) EqualApprox(o Mat2[T, A], opts ...Option) bool {
	return equalApprox(m[:], o[:], epsilonFor[T](opts))
}

// Buffer returns the zero-copy linear view of m's cells.
func (m *Mat2[T, A]) Buffer() *Buffer[T] { return newBuffer(m[:], 2) }

// String renders m as "[Mat2 c00 c01 ... ]" in row-major reading order.
func (m Mat2[T, A]) String() string { return format(name2, m[:], 2) }
