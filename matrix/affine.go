// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Translation4 returns the homogeneous translation by t.
func Translation4[T scalar.Float, A any](t vector.Vec3[T, A]) Mat4[T, A] {
	m := Identity4[T, A]()
	m[12], m[13], m[14] = t[0], t[1], t[2]

	return m
}

// Scaling3 returns the linear scale by s.
func Scaling3[T scalar.Float, A any](s vector.Vec3[T, A]) Mat3[T, A] {
	return Diagonal3(s)
}

// Scaling4 returns the homogeneous scale by s (w scale 1).
func Scaling4[T scalar.Float, A any](s vector.Vec3[T, A]) Mat4[T, A] {
	return Diagonal4(s.Extend(1))
}

// Extend4 embeds m as the upper-left block of a 4×4 identity.
func (m Mat3[T, A]) Extend4() Mat4[T, A] {
	out := Identity4[T, A]()
	for col := 0; col < 3; col++ {
		copy(out[col*4:col*4+3], m[col*3:col*3+3])
	}

	return out
}

// Upper3 returns the upper-left 3×3 block of m.
func (m Mat4[T, A]) Upper3() Mat3[T, A] {
	var out Mat3[T, A]
	for col := 0; col < 3; col++ {
		copy(out[col*3:col*3+3], m[col*4:col*4+3])
	}

	return out
}

// TransformPoint applies m to the point p (w = 1) and drops w.
// No perspective divide is performed.
func (m Mat4[T, A]) TransformPoint(p vector.Vec3[T, A]) vector.Vec3[T, A] {
	return m.MulVec(p.Extend(1)).XYZ()
}

// TransformDirection applies m to the direction d (w = 0).
func (m Mat4[T, A]) TransformDirection(d vector.Vec3[T, A]) vector.Vec3[T, A] {
	return m.MulVec(d.Extend(0)).XYZ()
}
