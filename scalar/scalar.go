// SPDX-License-Identifier: MIT

// Package scalar defines the numeric kinds shared by the vector, matrix and
// quat packages, plus the few scalar helpers they need on top of package math.
//
// Purpose:
//   - One constraint set for every fixed-size type (int32, int64, float32, float64).
//   - Generic wrappers over math.* that keep the host kind's precision contract:
//     float32 inputs are widened to float64 for the call and narrowed back.
//
// Notes:
//   - Integer arithmetic keeps two's-complement wrap-around; float arithmetic
//     keeps IEEE-754 NaN/Inf propagation. Nothing here saturates or traps.
package scalar

import (
	"math"
	"unsafe"
)

// Integer is the set of integer component kinds.
type Integer interface {
	~int32 | ~int64
}

// Float is the set of floating-point component kinds.
type Float interface {
	~float32 | ~float64
}

// Number is any supported component kind.
type Number interface {
	Integer | Float
}

// Abs returns |v|. For the most negative integer the result wraps, as in Go.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sqrt returns the square root of v in v's own kind.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Sincos returns sin(a) and cos(a) in a's own kind.
func Sincos[T Float](a T) (sin, cos T) {
	s, c := math.Sincos(float64(a))

	return T(s), T(c)
}

// Acos returns arccos(v), clamping v into [-1, 1] first so that rounding
// noise on unit-length inputs never produces NaN.
func Acos[T Float](v T) T {
	f := float64(v)
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}

	return T(math.Acos(f))
}

// Atan2 returns atan2(y, x) in the operands' kind.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Clamp limits v to [lo, hi]. When lo > hi the result is hi.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}

	return v
}

// NearlyEqual reports whether |a-b| <= eps. NaN is never nearly equal to anything.
func NearlyEqual[T Float](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}

// IsSingle reports whether T is a 32-bit float kind. Tolerance defaults
// differ between the two float widths.
func IsSingle[T Float]() bool {
	var zero T

	return unsafe.Sizeof(zero) == 4
}
