// Package lvgeom is a fixed-size linear-algebra toolkit for graphics and
// geometry code: small vectors, square matrices up to 4×4 and quaternions,
// each tagged at compile time with the coordinate space it lives in.
//
// What is lvgeom?
//
//	A pure-data library with no shared state and no I/O:
//		• Vectors: 2-, 3- and 4-component, int32/int64/float32/float64
//		• Matrices: 2×2, 3×3, 4×4 float32/float64, column-major
//		• Row operations: exchange, scale, scaled add (the Gauss-Jordan basis)
//		• Determinant, trace, transpose, inversion (comma-ok on singular input)
//		• Linear buffer view: native byte order, ready for a renderer upload
//		• Quaternions: axis-angle, rotation matrices, Hamilton product, Slerp
//
// Why the phantom tags?
//
//   - Vec3[float64, space.World] and Vec3[float64, space.Object] share one
//     runtime layout, yet mixing them in arithmetic fails to compile.
//   - Moving a value between spaces is explicit: vector.Retag3, quat.Retag,
//     or a plain conversion.
//
// Value and in-place forms:
//
//	Every type is an array, so values copy on assignment. Value-receiver
//	methods return a new result and leave the receiver untouched;
//	pointer-receiver ...InPlace methods mutate the receiver.
//
// Layout:
//
//	scalar/ — numeric constraints and width-generic math helpers
//	space/  — coordinate-space tag types
//	vector/ — Vec2/3/4, float helpers and bulk kernels
//	matrix/ — Mat2/3/4, row operations, inversion, Buffer
//	quat/   — Quat and its matrix/axis-angle conversions
//
// Quick example:
//
//	q := quat.FromAxisAngle(vector.Vec3d{0, 0, 1}, math.Pi/2)
//	m := q.Mat4()                       // quarter turn about z
//	inv, ok := m.Invert()               // ok == true, inv == transpose
//	p := m.TransformPoint(vector.Vec3d{1, 0, 0}) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
