// SPDX-License-Identifier: MIT

package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/space"
	"github.com/katalvlaran/lvgeom/vector"
)

const tol = 1e-9

// unitAxis normalises v; fixtures are written with small integers.
func unitAxis(v vector.Vec3d) vector.Vec3d { return vector.Normalize3(v) }

// RequireVec3Near fails unless every component of got is within tol of want.
func RequireVec3Near(t *testing.T, want, got vector.Vec3d, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

// RequireSameRotation fails unless a and b agree up to sign.
func RequireSameRotation(t *testing.T, want, got quat.Quatd) {
	t.Helper()
	require.Truef(t, want.EqualRotation(got, tol), "want %v, got %v", want, got)
}

// sampleRotations covers every branch of the matrix extraction: positive
// trace and a dominant x, y or z diagonal term.
func sampleRotations() map[string]quat.Quatd {
	return map[string]quat.Quatd{
		"identity":      quat.Identity[float64, space.None](),
		"small/z":       quat.FromAxisAngle(vector.Vec3d{0, 0, 1}, 0.25),
		"oblique":       quat.FromAxisAngle(unitAxis(vector.Vec3d{1, 2, 2}), 1.1),
		"half-turn/x":   quat.FromAxisAngle(vector.Vec3d{1, 0, 0}, math.Pi),
		"half-turn/y":   quat.FromAxisAngle(vector.Vec3d{0, 1, 0}, math.Pi),
		"half-turn/z":   quat.FromAxisAngle(vector.Vec3d{0, 0, 1}, math.Pi),
		"near-half/xy":  quat.FromAxisAngle(unitAxis(vector.Vec3d{3, 4, 0}), 3),
		"obtuse/-1,1,1": quat.FromAxisAngle(unitAxis(vector.Vec3d{-1, 1, 1}), 2.5),
	}
}
