package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// ExampleMat2_Invert inverts a shear and shows the singular case.
func ExampleMat2_Invert() {
	shear := matrix.FromRows2(vector.Vec2d{1, 2}, vector.Vec2d{0, 1})
	inv, ok := shear.Invert()
	fmt.Println(inv, ok)

	flat := matrix.FromRows2(vector.Vec2d{1, 2}, vector.Vec2d{2, 4})
	_, ok = flat.Invert()
	fmt.Println("singular:", !ok)

	// Output:
	// [Mat2 1 -2 0 1] true
	// singular: true
}

// ExampleMat2_ExchangeRows walks through the elementary row operations.
func ExampleMat2_ExchangeRows() {
	m := matrix.FromRows2(vector.Vec2d{1, 2}, vector.Vec2d{3, 4})

	swapped, _ := m.ExchangeRows(0, 1)
	scaled, _ := m.ScaleRow(0, 2)
	_, err := m.AddRowScaled(0, 1, 2, 1)

	fmt.Println(swapped)
	fmt.Println(scaled)
	fmt.Println(err)
	fmt.Println(m.Determinant(), swapped.Determinant())

	// Output:
	// [Mat2 3 4 1 2]
	// [Mat2 2 4 3 4]
	// Mat2.AddRowScaled(0,1,2): matrix: index out of range
	// -2 2
}

// ExampleMat2_Buffer reads the column-major view.
func ExampleMat2_Buffer() {
	m := matrix.FromRows2(vector.Vec2d{1, 2}, vector.Vec2d{3, 4})
	buf := m.Buffer()
	fmt.Println(buf.Floats(), buf.Position())

	// Output:
	// [1 3 2 4] 0
}

// ExampleMat4_TransformPoint moves a point and leaves a direction alone.
func ExampleMat4_TransformPoint() {
	t := matrix.Translation4(vector.Vec3d{1, 2, 3})
	fmt.Println(t.TransformPoint(vector.Vec3d{1, 1, 1}))
	fmt.Println(t.TransformDirection(vector.Vec3d{1, 1, 1}))

	// Output:
	// [Vec3 2 3 4]
	// [Vec3 1 1 1]
}
