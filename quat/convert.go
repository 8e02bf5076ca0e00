// SPDX-License-Identifier: MIT

package quat

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// FromAxisAngle returns the rotation of angle radians about axis:
// (axis·sin(angle/2), cos(angle/2)). axis is used as given.
func FromAxisAngle[T scalar.Float, A any](axis vector.Vec3[T, A], angle T) Quat[T, A] {
	s, c := scalar.Sincos(angle / 2)

	return Quat[T, A]{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// ToAxisAngle decomposes q into a unit axis and an angle in [0, 2π].
// When the axis is undefined (identity, the zero quaternion, or a full turn)
// the axis is (1, 0, 0); the angle is 0 except for a full turn.
func (q Quat[T, A]) ToAxisAngle() (axis vector.Vec3[T, A], angle T) {
	n := q.Normalize()
	if n == (Quat[T, A]{}) {
		return vector.Vec3[T, A]{1, 0, 0}, 0
	}

	v := n.Vector()
	s := vector.Length3(v)
	angle = 2 * scalar.Atan2(s, n[3])
	if s <= T(axisEpsilon[T]()) {
		return vector.Vec3[T, A]{1, 0, 0}, angle
	}

	return v.Scale(1 / s), angle
}

// axisEpsilon is the sin(angle/2) below which the axis is numerically noise.
func axisEpsilon[T scalar.Float]() float64 {
	if scalar.IsSingle[T]() {
		return matrix.DefaultEpsilon32
	}

	return matrix.DefaultEpsilon
}

// Mat3 returns the rotation matrix of q. A non-unit q yields the matrix of
// its normalised rotation; the zero quaternion yields the identity.
func (q Quat[T, A]) Mat3() matrix.Mat3[T, A] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	var s T
	if n := q.MagnitudeSquared(); n != 0 {
		s = 2 / n
	}

	xx, yy, zz := x*x*s, y*y*s, z*z*s
	xy, xz, yz := x*y*s, x*z*s, y*z*s
	wx, wy, wz := w*x*s, w*y*s, w*z*s

	return matrix.FromRows3(
		vector.Vec3[T, A]{1 - (yy + zz), xy - wz, xz + wy},
		vector.Vec3[T, A]{xy + wz, 1 - (xx + zz), yz - wx},
		vector.Vec3[T, A]{xz - wy, yz + wx, 1 - (xx + yy)},
	)
}

// Mat4 returns the homogeneous rotation matrix of q (no translation).
func (q Quat[T, A]) Mat4() matrix.Mat4[T, A] { return q.Mat3().Extend4() }

// FromMat3 extracts the unit quaternion of rotation matrix m using
// Shepperd's method. m is assumed orthonormal.
func FromMat3[T scalar.Float, A any](m matrix.Mat3[T, A]) Quat[T, A] {
	r := m.Rows()
	m00, m01, m02 := r[0][0], r[0][1], r[0][2]
	m10, m11, m12 := r[1][0], r[1][1], r[1][2]
	m20, m21, m22 := r[2][0], r[2][1], r[2][2]

	var q Quat[T, A]
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := scalar.Sqrt(tr+1) * 2 // 4w
		q = Quat[T, A]{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := scalar.Sqrt(1+m00-m11-m22) * 2 // 4x
		q = Quat[T, A]{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := scalar.Sqrt(1+m11-m00-m22) * 2 // 4y
		q = Quat[T, A]{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := scalar.Sqrt(1+m22-m00-m11) * 2 // 4z
		q = Quat[T, A]{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m10 - m01) / s}
	}

	return q.Normalize()
}

// FromMat4 extracts the rotation held in the upper-left 3×3 block of m.
func FromMat4[T scalar.Float, A any](m matrix.Mat4[T, A]) Quat[T, A] {
	return FromMat3(m.Upper3())
}
