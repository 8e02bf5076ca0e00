// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Length2 returns the Euclidean length of v.
func Length2[T scalar.Float, A any](v Vec2[T, A]) T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize2 returns v scaled to unit length; the zero vector stays zero.
func Normalize2[T scalar.Float, A any](v Vec2[T, A]) Vec2[T, A] {
	l := Length2(v)
	if l == 0 {
		return Vec2[T, A]{}
	}

	return v.Scale(1 / l)
}

// Lerp2 interpolates linearly: a at t=0, b at t=1. t is not clamped.
func Lerp2[T scalar.Float, A any](a, b Vec2[T, A], t T) Vec2[T, A] {
	for i := range a {
		a[i] += (b[i] - a[i]) * t
	}

	return a
}

// Length3 returns the Euclidean length of v.
func Length3[T scalar.Float, A any](v Vec3[T, A]) T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize3 returns v scaled to unit length; the zero vector stays zero.
func Normalize3[T scalar.Float, A any](v Vec3[T, A]) Vec3[T, A] {
	l := Length3(v)
	if l == 0 {
		return Vec3[T, A]{}
	}

	return v.Scale(1 / l)
}

// Lerp3 interpolates linearly: a at t=0, b at t=1. t is not clamped.
func Lerp3[T scalar.Float, A any](a, b Vec3[T, A], t T) Vec3[T, A] {
	for i := range a {
		a[i] += (b[i] - a[i]) * t
	}

	return a
}

// Length4 returns the Euclidean length of v.
func Length4[T scalar.Float, A any](v Vec4[T, A]) T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize4 returns v scaled to unit length; the zero vector stays zero.
func Normalize4[T scalar.Float, A any](v Vec4[T, A]) Vec4[T, A] {
	l := Length4(v)
	if l == 0 {
		return Vec4[T, A]{}
	}

	return v.Scale(1 / l)
}

// Lerp4 interpolates linearly: a at t=0, b at t=1. t is not clamped.
func Lerp4[T scalar.Float, A any](a, b Vec4[T, A], t T) Vec4[T, A] {
	for i := range a {
		a[i] += (b[i] - a[i]) * t
	}

	return a
}
