// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvgeom/space"

// Untagged shorthands: f=float32, d=float64.
type (
	Mat2f = Mat2[float32, space.None]
	Mat2d = Mat2[float64, space.None]
	Mat3f = Mat3[float32, space.None]
	Mat3d = Mat3[float64, space.None]
	Mat4f = Mat4[float32, space.None]
	Mat4d = Mat4[float64, space.None]
)
