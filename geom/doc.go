// SPDX-License-Identifier: MIT

// Package geom provides the small fixed-size linear algebra used by the
// field solver: 3D vectors (Vec3), 3×3 matrices (Mat3) and the Rodrigues
// rotation that maps one unit vector onto another.
//
// 🚀 What is inside?
//
//	• Vec3 — value-type vector with Add/Sub/Scale/Dot/Cross/Norm/Unit
//	• Mat3 — row-major 3×3 matrix with Mul/Apply/Transpose/Det
//	• RotationFromTo — minimal rotation taking unit vector a onto b
//
// ✨ Design:
//
//   - Value semantics only: every operation returns a fresh value, nothing
//     is mutated in place, so values may be shared freely across goroutines.
//   - No allocations: Vec3 and Mat3 are arrays/structs passed by value.
//   - Degenerate inputs are reported through sentinel errors, never NaN.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/coilfield/geom"
//
//	r, err := geom.RotationFromTo(geom.UnitY, geom.Vec3{X: 1})
//	if err != nil {
//	  // handle ErrZeroVector
//	}
//	p := r.Apply(geom.Vec3{Y: 1}) // ≈ (1, 0, 0)
//
// Complexity: every operation is O(1).
package geom
