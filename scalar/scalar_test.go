package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/scalar"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, int32(3), scalar.Abs(int32(-3)))
	assert.Equal(t, int64(7), scalar.Abs(int64(7)))
	assert.Equal(t, float32(0.5), scalar.Abs(float32(-0.5)))
	assert.Equal(t, 2.25, scalar.Abs(-2.25))
}

func TestAcos_ClampsRoundingNoise(t *testing.T) {
	require.False(t, math.IsNaN(float64(scalar.Acos(1.0000001))))
	require.InDelta(t, 0.0, scalar.Acos(1.0000001), 1e-12)
	require.InDelta(t, math.Pi, scalar.Acos(-1.0000001), 1e-12)
}

func TestAtan2_Quadrants(t *testing.T) {
	require.InDelta(t, math.Pi/4, scalar.Atan2(1.0, 1.0), 1e-15)
	require.InDelta(t, math.Pi, scalar.Atan2(0.0, -1.0), 1e-15)
	require.InDelta(t, -math.Pi/2, scalar.Atan2(float32(-2), 0), 1e-6)
	require.Equal(t, 0.0, scalar.Atan2(0.0, 1.0))
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		name      string
		v, lo, hi int64
		want      int64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 4, 0, 10, 4},
		{"above", 11, 0, 10, 10},
		{"inverted bounds", 4, 10, 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scalar.Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, scalar.NearlyEqual(1.0, 1.0+1e-12, 1e-9))
	assert.False(t, scalar.NearlyEqual(1.0, 1.1, 1e-9))
	assert.False(t, scalar.NearlyEqual(math.NaN(), math.NaN(), 1))
}

func TestIsSingle(t *testing.T) {
	assert.True(t, scalar.IsSingle[float32]())
	assert.False(t, scalar.IsSingle[float64]())
}

func TestSincos(t *testing.T) {
	s, c := scalar.Sincos(float32(math.Pi / 2))
	assert.InDelta(t, 1.0, s, 1e-6)
	assert.InDelta(t, 0.0, c, 1e-6)
}
