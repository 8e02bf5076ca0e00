// SPDX-License-Identifier: MIT

// Package space provides phantom coordinate-space tags.
//
// A tag is an empty struct used only as the last type argument of the vector,
// matrix and quat types, e.g. vector.Vec3[float32, space.World]. It is never
// stored, so tagged and untagged values share one runtime layout and compare
// equal when their components do. The compiler, however, refuses to add a
// world-space vector to an object-space one.
//
// Callers are free to declare their own tags:
//
//	type Light struct{}
//	var p vector.Vec3[float64, Light]
package space

// None marks values that carry no particular coordinate space.
type None struct{}

// World marks world-space values.
type World struct{}

// Object marks object (model) space values.
type Object struct{}

// View marks eye/camera space values.
type View struct{}

// Clip marks clip-space values.
type Clip struct{}
