// SPDX-License-Identifier: MIT

// Package vector provides fixed-size 2-, 3- and 4-component vectors.
//
// Vec2, Vec3 and Vec4 are plain arrays parameterised by component kind
// (int32, int64, float32, float64) and a phantom coordinate-space tag from
// package space. Being arrays they are values: assignment copies, == compares
// component-wise, and the zero value is the zero vector. Point4 returns the
// homogeneous-point default (0,0,0,1).
//
// Every operation comes in two forms:
//   - value receiver (Add, Sub, Scale...) returns a new vector, receiver untouched;
//   - pointer receiver (AddInPlace, SubInPlace, ScaleInPlace) mutates and
//     returns the receiver for chaining.
//
// Operations that only make sense for floats (length, normalisation,
// interpolation) are package functions constrained to scalar.Float.
// Normalising the zero vector yields the zero vector.
//
// Component access through At/Set is bounds-checked and reports
// ErrOutOfRange instead of panicking.
package vector
