// SPDX-License-Identifier: MIT

package quat

import (
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Quat is a quaternion (x, y, z, w) tagged with coordinate space A.
type Quat[T scalar.Float, A any] [4]T

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalised linear blend; sin(θ) is too small to divide by beyond it.
const slerpLinearThreshold = 0.9995

// Identity returns the no-rotation quaternion (0, 0, 0, 1).
func Identity[T scalar.Float, A any]() Quat[T, A] {
	return Quat[T, A]{0, 0, 0, 1}
}

// New builds a quaternion from its vector part and scalar part.
func New[T scalar.Float, A any](v vector.Vec3[T, A], w T) Quat[T, A] {
	return Quat[T, A]{v[0], v[1], v[2], w}
}

// Retag moves q into space B without touching its components.
func Retag[B any, T scalar.Float, A any](q Quat[T, A]) Quat[T, B] {
	return Quat[T, B](q)
}

// At returns component i (0=x, 1=y, 2=z, 3=w).
func (q Quat[T, A]) At(i int) (T, error) {
	if i < 0 || i >= 4 {
		return 0, indexErrorf("At", i)
	}

	return q[i], nil
}

// Set assigns component i. An invalid index leaves q unchanged.
func (q *Quat[T, A]) Set(i int, v T) error {
	if i < 0 || i >= 4 {
		return indexErrorf("Set", i)
	}
	q[i] = v

	return nil
}

// Vector returns the vector part (x, y, z).
func (q Quat[T, A]) Vector() vector.Vec3[T, A] {
	return vector.Vec3[T, A]{q[0], q[1], q[2]}
}

// W returns the scalar part.
func (q Quat[T, A]) W() T { return q[3] }

// Multiply returns the Hamilton product q*o. Applied to a vector it rotates
// by o first, then by q.
func (q Quat[T, A]) Multiply(o Quat[T, A]) Quat[T, A] {
	ax, ay, az, aw := q[0], q[1], q[2], q[3]
	bx, by, bz, bw := o[0], o[1], o[2], o[3]

	return Quat[T, A]{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// MultiplyInPlace sets q = q*o and returns q.
func (q *Quat[T, A]) MultiplyInPlace(o Quat[T, A]) *Quat[T, A] {
	*q = q.Multiply(o)

	return q
}

// Conjugate negates the vector part and keeps w.
func (q Quat[T, A]) Conjugate() Quat[T, A] {
	return Quat[T, A]{-q[0], -q[1], -q[2], q[3]}
}

// ConjugateInPlace conjugates q and returns it.
func (q *Quat[T, A]) ConjugateInPlace() *Quat[T, A] {
	q[0], q[1], q[2] = -q[0], -q[1], -q[2]

	return q
}

// Negate returns -q, the same rotation with every component negated.
func (q Quat[T, A]) Negate() Quat[T, A] {
	return Quat[T, A]{-q[0], -q[1], -q[2], -q[3]}
}

// Dot returns the four-component dot product.
func (q Quat[T, A]) Dot(o Quat[T, A]) T {
	return q[0]*o[0] + q[1]*o[1] + q[2]*o[2] + q[3]*o[3]
}

// MagnitudeSquared returns x²+y²+z²+w².
func (q Quat[T, A]) MagnitudeSquared() T { return q.Dot(q) }

// Magnitude returns the Euclidean norm over all four components.
func (q Quat[T, A]) Magnitude() T { return scalar.Sqrt(q.Dot(q)) }

// Normalize returns q scaled to unit magnitude; the zero quaternion stays zero.
func (q Quat[T, A]) Normalize() Quat[T, A] {
	m := q.Magnitude()
	if m == 0 {
		return Quat[T, A]{}
	}

	return Quat[T, A]{q[0] / m, q[1] / m, q[2] / m, q[3] / m}
}

// NormalizeInPlace normalises q and returns it.
func (q *Quat[T, A]) NormalizeInPlace() *Quat[T, A] {
	*q = q.Normalize()

	return q
}

// Invert returns the multiplicative inverse conj(q)/|q|².
// ok is false for the zero quaternion.
func (q Quat[T, A]) Invert() (inv Quat[T, A], ok bool) {
	n := q.MagnitudeSquared()
	if n == 0 {
		return Quat[T, A]{}, false
	}
	c := q.Conjugate()
	for i := range c {
		c[i] /= n
	}

	return c, true
}

// Rotate applies the rotation described by q to v.
func (q Quat[T, A]) Rotate(v vector.Vec3[T, A]) vector.Vec3[T, A] {
	return q.Mat3().MulVec(v)
}

// Slerp interpolates along the shorter arc between q and o: q at t=0, o at
// t=1. Inputs are expected to be unit quaternions; the result is unit.
func (q Quat[T, A]) Slerp(o Quat[T, A], t T) Quat[T, A] {
	d := q.Dot(o)
	if d < 0 {
		o, d = o.Negate(), -d
	}

	var wq, wo T
	if d > slerpLinearThreshold {
		wq, wo = 1-t, t
	} else {
		theta := scalar.Acos(d)
		sinTheta, _ := scalar.Sincos(theta)
		sa, _ := scalar.Sincos((1 - t) * theta)
		sb, _ := scalar.Sincos(t * theta)
		wq, wo = sa/sinTheta, sb/sinTheta
	}

	var out Quat[T, A]
	for i := range out {
		out[i] = wq*q[i] + wo*o[i]
	}

	return out.Normalize()
}

// EqualRotation reports whether q and o describe the same rotation, i.e.
// their normalised forms agree within eps up to an overall sign.
func (q Quat[T, A]) EqualRotation(o Quat[T, A], eps float64) bool {
	a, b := q.Normalize(), o.Normalize()

	return nearly(a, b, eps) || nearly(a, b.Negate(), eps)
}

func nearly[T scalar.Float, A any](a, b Quat[T, A], eps float64) bool {
	for i := range a {
		if !scalar.NearlyEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// String renders "[Quat x y z w]".
func (q Quat[T, A]) String() string {
	var sb strings.Builder
	sb.WriteString("[Quat")
	for _, c := range q {
		sb.WriteByte(' ')
		sb.WriteString(vector.FormatComponent(c))
	}
	sb.WriteByte(']')

	return sb.String()
}
