// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec4 is a 4-component vector of kind T tagged with coordinate space A.
type Vec4[T scalar.Number, A any] [4]T

// At returns component i or ErrOutOfRange.
func (v Vec4[T, A]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return 0, indexErrorf("Vec4.At", i)
	}

	return v[i], nil
}

// Set stores x into component i. Nothing is written on ErrOutOfRange.
func (v *Vec4[T, A]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return indexErrorf("Vec4.Set", i)
	}
	v[i] = x

	return nil
}

// Add returns v + w.
func (v Vec4[T, A]) Add(w Vec4[T, A]) Vec4[T, A] {
	for i := range v {
		v[i] += w[i]
	}

	return v
}

// Sub returns v - w.
func (v Vec4[T, A]) Sub(w Vec4[T, A]) Vec4[T, A] {
	for i := range v {
		v[i] -= w[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec4[T, A]) Scale(k T) Vec4[T, A] {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Negate returns -v.
func (v Vec4[T, A]) Negate() Vec4[T, A] {
	for i := range v {
		v[i] = -v[i]
	}

	return v
}

// Dot returns v · w.
func (v Vec4[T, A]) Dot(w Vec4[T, A]) T {
	var d T
	for i := range v {
		d += v[i] * w[i]
	}

	return d
}

// Clamp limits every component of v to [lo[i], hi[i]].
func (v Vec4[T, A]) Clamp(lo, hi Vec4[T, A]) Vec4[T, A] {
	for i := range v {
		v[i] = scalar.Clamp(v[i], lo[i], hi[i])
	}

	return v
}

// AddInPlace sets v = v + w and returns v.
func (v *Vec4[T, A]) AddInPlace(w Vec4[T, A]) *Vec4[T, A] {
	*v = v.Add(w)

	return v
}

// SubInPlace sets v = v - w and returns v.
func (v *Vec4[T, A]) SubInPlace(w Vec4[T, A]) *Vec4[T, A] {
	*v = v.Sub(w)

	return v
}

// ScaleInPlace sets v = k·v and returns v.
func (v *Vec4[T, A]) ScaleInPlace(k T) *Vec4[T, A] {
	*v = v.Scale(k)

	return v
}

// String renders v as "[Vec4 c0 c1 ...]".
func (v Vec4[T, A]) String() string {
	var sb strings.Builder
	writeComponents(&sb, "Vec4", v[:])

	return sb.String()
}

// Retag4 moves v into space B without touching its components.
func Retag4[B any, T scalar.Number, A any](v Vec4[T, A]) Vec4[T, B] {
	return Vec4[T, B](v)
}

// XYZ drops the w component.
func (v Vec4[T, A]) XYZ() Vec3[T, A] {
	return Vec3[T, A]{v[0], v[1], v[2]}
}

// Point4 returns the homogeneous origin (0,0,0,1).
func Point4[T scalar.Number, A any]() Vec4[T, A] {
	return Vec4[T, A]{0, 0, 0, 1}
}
