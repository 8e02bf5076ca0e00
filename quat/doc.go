// SPDX-License-Identifier: MIT

// Package quat implements quaternions and their conversions to and from
// rotation matrices and axis-angle pairs.
//
// What & Why:
//
//	Quat is a [4]T array ordered (x, y, z, w): vector part first, scalar part
//	last. Like the vectors and matrices it carries a phantom coordinate-space
//	tag, so a world-space rotation cannot be applied to an object-space point
//	without an explicit retag. The zero value is the zero quaternion; use
//	Identity for the no-rotation default (0, 0, 0, 1).
//
// Conversions:
//
//   - FromAxisAngle uses the half-angle formula and does not renormalise the
//     axis; callers pass a unit vector.
//   - Mat3/Mat4 expand q into a rotation matrix. Non-unit quaternions are
//     treated as their normalised rotation; the zero quaternion maps to the
//     identity matrix.
//   - FromMat3/FromMat4 recover a unit quaternion with Shepperd's method,
//     branching on the largest diagonal term to keep the square root well
//     conditioned. The result equals the original up to sign.
//   - ToAxisAngle returns a unit axis and an angle in [0, 2π]; rotations
//     with no defined axis report (1, 0, 0) and angle 0.
//
// Edge cases:
//
//   - Normalize of the zero quaternion yields the zero quaternion.
//   - Invert of the zero quaternion reports ok=false.
//   - q and -q describe the same rotation; EqualRotation compares that way.
//
// Complexity:
//
//	Every operation is O(1): a fixed number of scalar multiply-adds.
package quat
