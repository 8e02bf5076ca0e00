// SPDX-License-Identifier: MIT

package quat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/space"
	"github.com/katalvlaran/lvgeom/vector"
)

func TestIdentity_IsDefaultRotation(t *testing.T) {
	id := quat.Identity[float64, space.None]()
	require.Equal(t, quat.Quatd{0, 0, 0, 1}, id)
	assert.Equal(t, 1.0, id.Magnitude())
	assert.Equal(t, vector.Vec3d{}, id.Vector())
	assert.Equal(t, 1.0, id.W())

	v := vector.Vec3d{3, -4, 5}
	assert.Equal(t, v, id.Rotate(v))
}

func TestAtSet(t *testing.T) {
	q := quat.Quatd{1, 2, 3, 4}
	for i, want := range []float64{1, 2, 3, 4} {
		got, err := q.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := q.At(4)
	require.ErrorIs(t, err, quat.ErrOutOfRange)
	require.EqualError(t, err, "Quat.At(4): quat: index out of range")

	require.ErrorIs(t, q.Set(-1, 9), quat.ErrOutOfRange)
	require.Equal(t, quat.Quatd{1, 2, 3, 4}, q, "failed Set must not write")

	require.NoError(t, q.Set(3, 9))
	require.Equal(t, quat.Quatd{1, 2, 3, 9}, q)
}

func TestConjugate(t *testing.T) {
	q := quat.Quatd{1, 2, 3, 4}
	require.Equal(t, quat.Quatd{-1, -2, -3, 4}, q.Conjugate())
	require.Equal(t, quat.Quatd{1, 2, 3, 4}, q, "value form leaves receiver alone")

	// q * conj(q) is purely scalar.
	require.Equal(t, quat.Quatd{0, 0, 0, 30}, q.Multiply(q.Conjugate()))

	p := q
	require.Same(t, &p, p.ConjugateInPlace())
	require.Equal(t, q.Conjugate(), p)
}

func TestMagnitudeAndNormalize(t *testing.T) {
	q := quat.Quatd{0, 3, 0, 4}
	assert.Equal(t, 25.0, q.MagnitudeSquared())
	assert.Equal(t, 5.0, q.Magnitude())
	assert.Equal(t, quat.Quatd{0, 0.6, 0, 0.8}, q.Normalize())

	var zero quat.Quatd
	assert.Equal(t, zero, zero.Normalize(), "zero normalises to zero")
	assert.Equal(t, zero, *zero.NormalizeInPlace())

	p := quat.Quatd{2, 0, 0, 0}
	p.NormalizeInPlace()
	assert.Equal(t, quat.Quatd{1, 0, 0, 0}, p)
}

func TestMultiply_HamiltonBasis(t *testing.T) {
	i := quat.Quatd{1, 0, 0, 0}
	j := quat.Quatd{0, 1, 0, 0}
	k := quat.Quatd{0, 0, 1, 0}
	minusOne := quat.Quatd{0, 0, 0, -1}

	assert.Equal(t, k, i.Multiply(j))
	assert.Equal(t, k.Negate(), j.Multiply(i), "non-commutative")
	assert.Equal(t, i, j.Multiply(k))
	assert.Equal(t, j, k.Multiply(i))
	assert.Equal(t, minusOne, i.Multiply(i))
	assert.Equal(t, minusOne, i.Multiply(j).Multiply(k))

	p := i
	p.MultiplyInPlace(j)
	assert.Equal(t, k, p)
}

func TestInvert(t *testing.T) {
	q := quat.Quatd{1, 2, 3, 4}
	inv, ok := q.Invert()
	require.True(t, ok)
	RequireSameRotation(t, quat.Identity[float64, space.None](), q.Multiply(inv))
	for c, want := range quat.Identity[float64, space.None]() {
		require.InDelta(t, want, q.Multiply(inv)[c], tol)
	}

	_, ok = quat.Quatd{}.Invert()
	require.False(t, ok)
}

func TestRotate_QuarterTurn(t *testing.T) {
	z90 := quat.FromAxisAngle(vector.Vec3d{0, 0, 1}, 3.141592653589793/2)
	RequireVec3Near(t, vector.Vec3d{0, 1, 0}, z90.Rotate(vector.Vec3d{1, 0, 0}))
	RequireVec3Near(t, vector.Vec3d{-1, 0, 0}, z90.Rotate(vector.Vec3d{0, 1, 0}))
	RequireVec3Near(t, vector.Vec3d{0, 0, 1}, z90.Rotate(vector.Vec3d{0, 0, 1}))

	// Scaling a quaternion does not change its rotation.
	var twice quat.Quatd
	for i := range z90 {
		twice[i] = 2 * z90[i]
	}
	RequireVec3Near(t, z90.Rotate(vector.Vec3d{1, 2, 3}), twice.Rotate(vector.Vec3d{1, 2, 3}))
}

func TestRotate_Float32(t *testing.T) {
	q := quat.FromAxisAngle(vector.Vec3f{0, 0, 1}, float32(3.14159265/2))
	got := q.Rotate(vector.Vec3f{1, 0, 0})
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 1, got[1], 1e-6)
	assert.InDelta(t, 0, got[2], 1e-6)
}

func TestSlerp(t *testing.T) {
	const halfPi = 3.141592653589793 / 2
	z := vector.Vec3d{0, 0, 1}
	from := quat.Identity[float64, space.None]()
	to := quat.FromAxisAngle(z, halfPi)

	RequireSameRotation(t, from, from.Slerp(to, 0))
	RequireSameRotation(t, to, from.Slerp(to, 1))
	RequireSameRotation(t, quat.FromAxisAngle(z, halfPi/2), from.Slerp(to, 0.5))
	RequireSameRotation(t, quat.FromAxisAngle(z, halfPi/2), from.Slerp(to.Negate(), 0.5))

	mid := from.Slerp(to, 0.3)
	assert.InDelta(t, 1, mid.Magnitude(), tol)

	// Nearly parallel inputs take the linear path and stay unit length.
	near := quat.FromAxisAngle(z, 1e-4)
	assert.InDelta(t, 1, from.Slerp(near, 0.5).Magnitude(), tol)
}

func TestEqualRotation(t *testing.T) {
	q := quat.FromAxisAngle(unitAxis(vector.Vec3d{1, 2, 2}), 0.7)
	assert.True(t, q.EqualRotation(q.Negate(), tol))
	assert.True(t, q.EqualRotation(quat.Quatd{2 * q[0], 2 * q[1], 2 * q[2], 2 * q[3]}, tol))
	assert.False(t, q.EqualRotation(q.Conjugate(), tol))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[Quat 0 0 0 1]", quat.Identity[float64, space.None]().String())
	assert.Equal(t, "[Quat 0.5 -1 2.25 0.1]", quat.Quatf{0.5, -1, 2.25, 0.1}.String())
}

func TestRetag_KeepsComponents(t *testing.T) {
	q := quat.Quat[float64, space.World]{1, 2, 3, 4}
	o := quat.Retag[space.Object](q)
	assert.Equal(t, [4]float64(q), [4]float64(o))
	assert.Equal(t, quat.New(vector.Vec3[float64, space.World]{1, 2, 3}, 4), q)
}
