// SPDX-License-Identifier: MIT

// Package coil describes idealized filamentary circular current loops and
// turns them into polylines for Biot–Savart integration.
//
// 🚀 What is a Loop?
//
//	A Loop is one circular coil: centre point, unit axis, radius, signed
//	current and turn count. Positive current circulates right-handed about
//	the axis, so the field at the loop centre points along +Axis.
//
// ✨ Key features:
//   - NewLoop / Validate — normalize the axis and reject degenerate geometry
//   - Discretize        — N evenly spaced samples and closing chord vectors,
//     rotated from the canonical x–z frame (normal +Y) onto the loop axis
//   - Presets           — single loop, coaxial/Helmholtz/Maxwell pairs,
//     toroidal ring of coils
//   - ReadSet / WriteSet — YAML coil-set files
//
// ⚙️ Usage:
//
//	loop, err := coil.NewLoop(geom.Vec3{}, geom.UnitY, 0.2, 100, 50)
//	if err != nil {
//	  // handle ErrDegenerateAxis, ErrNonPositiveRadius, ...
//	}
//	poly, err := coil.Discretize(loop, 200)
//
// Complexity:
//
//   - Discretize: O(N) time and memory.
//   - Presets:    O(number of loops).
package coil
