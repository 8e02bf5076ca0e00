// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvgeom/space"

// Untagged shorthands, suffixed by kind: i=int32, l=int64, f=float32, d=float64.
type (
	Vec2i = Vec2[int32, space.None]
	Vec2l = Vec2[int64, space.None]
	Vec2f = Vec2[float32, space.None]
	Vec2d = Vec2[float64, space.None]

	Vec3i = Vec3[int32, space.None]
	Vec3l = Vec3[int64, space.None]
	Vec3f = Vec3[float32, space.None]
	Vec3d = Vec3[float64, space.None]

	Vec4i = Vec4[int32, space.None]
	Vec4l = Vec4[int64, space.None]
	Vec4f = Vec4[float32, space.None]
	Vec4d = Vec4[float64, space.None]
)
