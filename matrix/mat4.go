// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Mat4 is a 4×4 matrix of float kind T tagged with coordinate space A.
// Cells are stored column-major: m[col*4+row]. The zero value is the zero
// matrix; Identity4 returns the identity.
type Mat4[T scalar.Float, A any] [16]T

const name4 = "Mat4"

// Identity4 returns the 4×4 identity matrix.
func Identity4[T scalar.Float, A any]() Mat4[T, A] {
	var m Mat4[T, A]
	setIdentity(m[:], 4)

	return m
}

// Diagonal4 returns the matrix with d on the diagonal and 0 elsewhere.
func Diagonal4[T scalar.Float, A any](d vector.Vec4[T, A]) Mat4[T, A] {
	var m Mat4[T, A]
	for i := range d {
		m[i*4+i] = d[i]
	}

	return m
}

// FromRows4 builds a matrix from its rows, top to bottom.
func FromRows4[T scalar.Float, A any](r0, r1, r2, r3 vector.Vec4[T, A]) Mat4[T, A] {
	var m Mat4[T, A]
	for r, row := range [4]vector.Vec4[T, A]{r0, r1, r2, r3} {
		for col := range row {
			m[col*4+r] = row[col]
		}
	}

	return m
}

// At returns cell (row, col) or ErrOutOfRange.
func (m Mat4[T, A]) At(row, col int) (T, error) {
	if !validIndices(4, row, col) {
		return 0, indexErrorf(name4, ctxAt, row, col)
	}

	return m[col*4+row], nil
}

// Set stores v at (row, col). Nothing is written on ErrOutOfRange.
func (m *Mat4[T, A]) Set(row, col int, v T) error {
	if !validIndices(4, row, col) {
		return indexErrorf(name4, ctxSet, row, col)
	}
	m[col*4+row] = v

	return nil
}

// CopyFrom overwrites every cell of m with src.
func (m *Mat4[T, A]) CopyFrom(src Mat4[T, A]) { *m = src }

// SetZero writes 0 into every cell, diagonal included.
func (m *Mat4[T, A]) SetZero() { *m = Mat4[T, A]{} }

// SetIdentity resets m to the identity.
func (m *Mat4[T, A]) SetIdentity() { setIdentity(m[:], 4) }

// Row returns row i.
func (m Mat4[T, A]) Row(i int) (vector.Vec4[T, A], error) {
	var v vector.Vec4[T, A]
	if !validIndices(4, i) {
		return v, indexErrorf(name4, ctxRow, i)
	}
	for col := range v {
		v[col] = m[col*4+i]
	}

	return v, nil
}

// Column returns column j.
func (m Mat4[T, A]) Column(j int) (vector.Vec4[T, A], error) {
	var v vector.Vec4[T, A]
	if !validIndices(4, j) {
		return v, indexErrorf(name4, ctxColumn, j)
	}
	copy(v[:], m[j*4:(j+1)*4])

	return v, nil
}

// Rows returns all rows, top to bottom.
func (m Mat4[T, A]) Rows() [4]vector.Vec4[T, A] {
	var rows [4]vector.Vec4[T, A]
	for r := range rows {
		for col := range rows[r] {
			rows[r][col] = m[col*4+r]
		}
	}

	return rows
}

// ExchangeRows returns a copy of m with rows a and b swapped.
func (m Mat4[T, A]) ExchangeRows(a, b int) (Mat4[T, A], error) {
	if err := m.ExchangeRowsInPlace(a, b); err != nil {
		return Mat4[T, A]{}, err
	}

	return m, nil
}

// ExchangeRowsInPlace swaps rows a and b of m.
func (m *Mat4[T, A]) ExchangeRowsInPlace(a, b int) error {
	if !validIndices(4, a, b) {
		return indexErrorf(name4, ctxExchangeRows, a, b)
	}
	exchangeRows(m[:], 4, a, b)

	return nil
}

// ScaleRow returns a copy of m with row r multiplied by k.
func (m Mat4[T, A]) ScaleRow(r int, k T) (Mat4[T, A], error) {
	if err := m.ScaleRowInPlace(r, k); err != nil {
		return Mat4[T, A]{}, err
	}

	return m, nil
}

// ScaleRowInPlace multiplies row r of m by k.
func (m *Mat4[T, A]) ScaleRowInPlace(r int, k T) error {
	if !validIndices(4, r) {
		return indexErrorf(name4, ctxScaleRow, r)
	}
	scaleRow(m[:], 4, r, k)

	return nil
}

// AddRowScaled returns a copy of m whose row c is row[a] + k*row[b].
func (m Mat4[T, A]) AddRowScaled(a, b, c int, k T) (Mat4[T, A], error) {
	if err := m.AddRowScaledInPlace(a, b, c, k); err != nil {
		return Mat4[T, A]{}, err
	}

	return m, nil
}

// AddRowScaledInPlace sets row c of m to row[a] + k*row[b].
// All three indices are checked before anything is written.
func (m *Mat4[T, A]) AddRowScaledInPlace(a, b, c int, k T) error {
	if !validIndices(4, a, b, c) {
		return indexErrorf(name4, ctxAddRowScaled, a, b, c)
	}
	addRowScaled(m[:], 4, a, b, c, k)

	return nil
}

// Determinant returns det(m).
func (m Mat4[T, A]) Determinant() T { return determinant(m[:], 4) }

// Trace returns the sum of the diagonal.
func (m Mat4[T, A]) Trace() T { return trace(m[:], 4) }

// Transpose returns mᵀ.
func (m Mat4[T, A]) Transpose() Mat4[T, A] {
	transpose(m[:], 4)

	return m
}

// TransposeInPlace replaces m with mᵀ.
func (m *Mat4[T, A]) TransposeInPlace() { transpose(m[:], 4) }

// Invert returns m⁻¹, or false when m is singular under the configured eps.
func (m Mat4[T, A]) Invert(opts ...Option) (Mat4[T, A], bool) {
	if !m.InvertInPlace(opts...) {
		return Mat4[T, A]{}, false
	}

	return m, true
}

// InvertInPlace replaces m with m⁻¹ and reports success.
// m is left untouched when it is singular.
func (m *Mat4[T, A]) InvertInPlace(opts ...Option) bool {
	return invert(m[:], 4, epsilonFor[T](opts))
}

// Multiply returns m×o.
func (m Mat4[T, A]) Multiply(o Mat4[T, A]) Mat4[T, A] {
	var out Mat4[T, A]
	multiply(out[:], m[:], o[:], 4)

	return out
}

// MultiplyInPlace sets m = m×o.
func (m *Mat4[T, A]) MultiplyInPlace(o Mat4[T, A]) {
	*m = m.Multiply(o)
}

// MulVec returns m×v.
func (m Mat4[T, A]) MulVec(v vector.Vec4[T, A]) vector.Vec4[T, A] {
	var out vector.Vec4[T, A]
	mulVec(out[:], m[:], v[:], 4)

	return out
}

// Add returns m + o.
func (m Mat4[T, A]) Add(o Mat4[T, A]) Mat4[T, A] {
	for k := range m {
		m[k] += o[k]
	}

	return m
}

// Sub returns m - o.
func (m Mat4[T, A]) Sub(o Mat4[T, A]) Mat4[T, A] {
	for k := range m {
		m[k] -= o[k]
	}

	return m
}

// Scale returns k·m.
func (m Mat4[T, A]) Scale(k T) Mat4[T, A] {
	for i := range m {
		m[i] *= k
	}

	return m
}

// EqualApprox reports whether every cell of m is within eps of o.
func (m Mat4[T, A]) EqualApprox(o Mat4[T, A], opts ...Option) bool {
	return equalApprox(m[:], o[:], epsilonFor[T](opts))
}

// Buffer returns the zero-copy linear view of m's cells.
func (m *Mat4[T, A]) Buffer() *Buffer[T] { return newBuffer(m[:], 4) }

// String renders m as "[Mat4 c00 c01 ... ]" in row-major reading order.
func (m Mat4[T, A]) String() string { return format(name4, m[:], 4) }
