// SPDX-License-Identifier: MIT

package vector

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"
)

// Packed is satisfied by every float64 vector type (any tag). A []Packed is
// laid out as one contiguous run of float64 components, which lets the bulk
// operations below hand the whole slice to a block kernel in one call.
type Packed interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

// flatten reinterprets vs as its components without copying.
func flatten[V Packed](vs []V) []float64 {
	if len(vs) == 0 {
		return nil
	}
	var zero V
	width := int(unsafe.Sizeof(zero) / unsafe.Sizeof(float64(0)))

	return unsafe.Slice((*float64)(unsafe.Pointer(&vs[0])), len(vs)*width)
}

// ScaleAll writes k·src[i] into dst[i] for every i.
// dst and src may be the same slice.
func ScaleAll[V Packed](dst, src []V, k float64) error {
	if len(dst) != len(src) {
		return ErrDimensionMismatch
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.ScaleBlock(flatten(dst), flatten(src), k)

	return nil
}

// AddAllInPlace adds src[i] to dst[i] for every i.
func AddAllInPlace[V Packed](dst, src []V) error {
	if len(dst) != len(src) {
		return ErrDimensionMismatch
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.AddBlockInPlace(flatten(dst), flatten(src))

	return nil
}

// MulAll writes the component-wise product a[i]∘b[i] into dst[i].
func MulAll[V Packed](dst, a, b []V) error {
	if len(dst) != len(a) || len(a) != len(b) {
		return ErrDimensionMismatch
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.MulBlock(flatten(dst), flatten(a), flatten(b))

	return nil
}

// MulAllInPlace multiplies dst[i] component-wise by src[i].
func MulAllInPlace[V Packed](dst, src []V) error {
	if len(dst) != len(src) {
		return ErrDimensionMismatch
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.MulBlockInPlace(flatten(dst), flatten(src))

	return nil
}
