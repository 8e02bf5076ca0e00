// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec3 is a 3-component vector of kind T tagged with coordinate space A.
type Vec3[T scalar.Number, A any] [3]T

// At returns component i or ErrOutOfRange.
func (v Vec3[T, A]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return 0, indexErrorf("Vec3.At", i)
	}

	return v[i], nil
}

// Set stores x into component i. Nothing is written on ErrOutOfRange.
func (v *Vec3[T, A]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return indexErrorf("Vec3.Set", i)
	}
	v[i] = x

	return nil
}

// Add returns v + w.
func (v Vec3[T, A]) Add(w Vec3[T, A]) Vec3[T, A] {
	for i := range v {
		v[i] += w[i]
	}

	return v
}

// Sub returns v - w.
func (v Vec3[T, A]) Sub(w Vec3[T, A]) Vec3[T, A] {
	for i := range v {
		v[i] -= w[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec3[T, A]) Scale(k T) Vec3[T, A] {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Negate returns -v.
func (v Vec3[T, A]) Negate() Vec3[T, A] {
	for i := range v {
		v[i] = -v[i]
	}

	return v
}

// Dot returns v · w.
func (v Vec3[T, A]) Dot(w Vec3[T, A]) T {
	var d T
	for i := range v {
		d += v[i] * w[i]
	}

	return d
}

// Clamp limits every component of v to [lo[i], hi[i]].
func (v Vec3[T, A]) Clamp(lo, hi Vec3[T, A]) Vec3[T, A] {
	for i := range v {
		v[i] = scalar.Clamp(v[i], lo[i], hi[i])
	}

	return v
}

// AddInPlace sets v = v + w and returns v.
func (v *Vec3[T, A]) AddInPlace(w Vec3[T, A]) *Vec3[T, A] {
	*v = v.Add(w)

	return v
}

// SubInPlace sets v = v - w and returns v.
func (v *Vec3[T, A]) SubInPlace(w Vec3[T, A]) *Vec3[T, A] {
	*v = v.Sub(w)

	return v
}

// ScaleInPlace sets v = k·v and returns v.
func (v *Vec3[T, A]) ScaleInPlace(k T) *Vec3[T, A] {
	*v = v.Scale(k)

	return v
}

// String renders v as "[Vec3 c0 c1 ...]".
func (v Vec3[T, A]) String() string {
	var sb strings.Builder
	writeComponents(&sb, "Vec3", v[:])

	return sb.String()
}

// Retag3 moves v into space B without touching its components.
func Retag3[B any, T scalar.Number, A any](v Vec3[T, A]) Vec3[T, B] {
	return Vec3[T, B](v)
}

// Extend returns the 4-component vector (x, y, z, w).
func (v Vec3[T, A]) Extend(w T) Vec4[T, A] {
	return Vec4[T, A]{v[0], v[1], v[2], w}
}

// Cross returns v × w.
func Cross[T scalar.Number, A any](v, w Vec3[T, A]) Vec3[T, A] {
	return Vec3[T, A]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}
