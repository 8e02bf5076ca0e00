// SPDX-License-Identifier: MIT

package quat

import "github.com/katalvlaran/lvgeom/space"

// Untagged shorthands: f=float32, d=float64.
type (
	Quatf = Quat[float32, space.None]
	Quatd = Quat[float64, space.None]
)
