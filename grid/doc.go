// SPDX-License-Identifier: MIT

// Package grid builds 2D observation planes for field evaluation.
//
// What:
//
//   - PlaneGrid samples a square [−extent, extent]² with res×res points on
//     one of the coordinate planes XZ, XY or YZ, through the origin.
//   - Points are flattened row-major: index = row·res + col, where the
//     column varies the first in-plane coordinate (U) and the row varies
//     the second (V).
//   - Values computed per point (e.g. |B|) can be reshaped back to rows.
//
// Why:
//
//   - A single flat []geom.Vec3 feeds biotsavart.Evaluate directly.
//   - Row/column indexing keeps slices and centre lookups trivial.
//
// Complexity:
//
//   - NewPlaneGrid: O(res²) time and memory.
//   - Index/Center/UV: O(1).
//   - Reshape: O(res²).
//
// Errors:
//
//   - ErrBadExtent:     extent is not a finite positive number.
//   - ErrBadResolution: resolution < 1.
//   - ErrUnknownPlane:  plane name not one of xz, xy, yz.
//   - ErrLength:        Reshape input length differs from res².
package grid
