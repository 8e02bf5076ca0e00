// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec2 is a 2-component vector of kind T tagged with coordinate space A.
type Vec2[T scalar.Number, A any] [2]T

// At returns component i or ErrOutOfRange.
func (v Vec2[T, A]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return 0, indexErrorf("Vec2.At", i)
	}

	return v[i], nil
}

// Set stores x into component i. Nothing is written on ErrOutOfRange.
func (v *Vec2[T, A]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return indexErrorf("Vec2.Set", i)
	}
	v[i] = x

	return nil
}

// Add returns v + w.
func (v Vec2[T, A]) Add(w Vec2[T, A]) Vec2[T, A] {
	for i := range v {
		v[i] += w[i]
	}

	return v
}

// Sub returns v - w.
func (v Vec2[T, A]) Sub(w Vec2[T, A]) Vec2[T, A] {
	for i := range v {
		v[i] -= w[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec2[T, A]) Scale(k T) Vec2[T, A] {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Negate returns -v.
func (v Vec2[T, A]) Negate() Vec2[T, A] {
	for i := range v {
		v[i] = -v[i]
	}

	return v
}

// Dot returns v · w.
func (v Vec2[T, A]) Dot(w Vec2[T, A]) T {
	var d T
	for i := range v {
		d += v[i] * w[i]
	}

	return d
}

// Clamp limits every component of v to [lo[i], hi[i]].
func (v Vec2[T, A]) Clamp(lo, hi Vec2[T, A]) Vec2[T, A] {
	for i := range v {
		v[i] = scalar.Clamp(v[i], lo[i], hi[i])
	}

	return v
}

// AddInPlace sets v = v + w and returns v.
func (v *Vec2[T, A]) AddInPlace(w Vec2[T, A]) *Vec2[T, A] {
	*v = v.Add(w)

	return v
}

// SubInPlace sets v = v - w and returns v.
func (v *Vec2[T, A]) SubInPlace(w Vec2[T, A]) *Vec2[T, A] {
	*v = v.Sub(w)

	return v
}

// ScaleInPlace sets v = k·v and returns v.
func (v *Vec2[T, A]) ScaleInPlace(k T) *Vec2[T, A] {
	*v = v.Scale(k)

	return v
}

// String renders v as "[Vec2 c0 c1 ...]".
func (v Vec2[T, A]) String() string {
	var sb strings.Builder
	writeComponents(&sb, "Vec2", v[:])

	return sb.String()
}

// Retag2 moves v into space B without touching its components.
func Retag2[B any, T scalar.Number, A any](v Vec2[T, A]) Vec2[T, B] {
	return Vec2[T, B](v)
}
