// SPDX-License-Identifier: MIT

// Package matrix implements fixed-size square matrices (2×2, 3×3, 4×4) and the
// algebra engine behind them.
//
// What & Why:
//
//	Mat2, Mat3 and Mat4 are column-major arrays of float32 or float64 cells,
//	parameterised by a phantom coordinate-space tag. Being arrays they are
//	values; each operation is offered as a value method returning a new
//	matrix and, where it mutates, as a pointer method with an InPlace suffix.
//
// The engine:
//
//   - Storage: bounds-checked At/Set (ErrOutOfRange, never a panic),
//     CopyFrom, SetZero, SetIdentity, Row/Column/Rows, FromRowsN.
//   - Row operations: ExchangeRows, ScaleRow and AddRowScaled
//     (row[c] = row[a] + k*row[b]); every index is validated before any write.
//   - Determinant by direct expansion, Trace, Transpose.
//   - Invert by Gauss-Jordan elimination built from the row operations.
//     Singularity is not an error: Invert returns (zero, false).
//   - Buffer: a zero-copy, native-byte-order, column-major view whose read
//     position is 0 whenever it is observed.
//
// Numeric policy is configured with functional options (WithEpsilon);
// defaults are DefaultEpsilon for float64 and DefaultEpsilon32 for float32.
//
// Complexity:
//
//	At/Set/row operations O(N); Determinant O(1) per fixed N; Invert and
//	Multiply O(N³) with no heap allocation.
package matrix
